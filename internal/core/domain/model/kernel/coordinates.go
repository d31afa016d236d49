package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean Earth radius of the spherical model used for distances.
	EarthRadiusKm = 6371.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when using zero-value Coordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is an immutable geographic position in decimal degrees.
// Both latitude and longitude are mandatory; the zero value is invalid.
//
// Example:
//
//	madrid, _ := kernel.NewCoordinates(40.4168, -3.7038)
//	paris, _ := kernel.NewCoordinates(48.8566, 2.3522)
//	km := madrid.DistanceTo(paris) // ~1053
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates validates and builds a position.
// Latitude must be within [-90, 90], longitude within [-180, 180].
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate checks that the coordinates were built by NewCoordinates.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// IsEqual reports whether two positions are exactly the same point.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%g,%g)", c.latitude, c.longitude)
}

// DistanceTo returns the great-circle distance to other in kilometers.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	return Haversine(c.latitude, c.longitude, other.latitude, other.longitude)
}

// Haversine returns the great-circle distance in kilometers between
// (lat1, lon1) and (lat2, lon2), all in degrees, on a sphere of radius
// EarthRadiusKm. It is symmetric and accepts any real input.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := hav(dLat) + math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*hav(dLon)
	// rounding near antipodes can leave a just outside [0, 1]
	a = math.Min(1, math.Max(0, a))
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func hav(theta float64) float64 {
	s := math.Sin(theta / 2)
	return s * s
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) {
		return errs.NewValueIsRequiredError("latitude")
	}
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) {
		return errs.NewValueIsRequiredError("longitude")
	}
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	c.longitude = longitude
	return nil
}
