package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateCenterCommandIsNotConstructed = errors.New(
	"UpdateCenterCommand must be created via NewUpdateCenterCommand constructor",
)

// MessageCenterUpdated is returned to clients after a successful update.
const MessageCenterUpdated = "Logistics center updated successfully."

// CenterChanges lists the requested changes of a center update; nil fields are kept.
// Latitude and longitude can be changed independently of each other.
type CenterChanges struct {
	Name        *string
	Capacity    *string
	Status      *string
	CurrentLoad *int
	MaxCapacity *int
	Latitude    *float64
	Longitude   *float64
}

// UpdateCenterCommand is a partial update of an existing center.
type UpdateCenterCommand struct { //nolint:recvcheck //using for validation
	centerID  kernel.ID
	patch     center.Patch
	latitude  *float64
	longitude *float64

	guard guard.ConstructorGuard
}

// NewUpdateCenterCommand validates the identity and every supplied value that can be
// checked without the stored center. Load and position are checked by the handler.
func NewUpdateCenterCommand(centerID kernel.ID, changes CenterChanges) (UpdateCenterCommand, error) {
	cmd := UpdateCenterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCenterID(centerID),
		cmd.setCapacity(changes.Capacity),
		cmd.setStatus(changes.Status),
		cmd.setPosition(changes.Latitude, changes.Longitude),
	); err != nil {
		return UpdateCenterCommand{}, err
	}

	cmd.patch.Name = changes.Name
	cmd.patch.CurrentLoad = changes.CurrentLoad
	cmd.patch.MaxCapacity = changes.MaxCapacity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCenterCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCenterCommandIsNotConstructed)
}

// CenterID returns the identity of the center to update.
func (c UpdateCenterCommand) CenterID() kernel.ID {
	return c.centerID
}

// PatchFor builds the patch for the stored center, completing a partial
// position change with the center's current latitude or longitude.
func (c UpdateCenterCommand) PatchFor(current *center.Center) (center.Patch, error) {
	patch := c.patch
	if c.latitude == nil && c.longitude == nil {
		return patch, nil
	}

	latitude := current.Coordinates().Latitude()
	if c.latitude != nil {
		latitude = *c.latitude
	}
	longitude := current.Coordinates().Longitude()
	if c.longitude != nil {
		longitude = *c.longitude
	}

	coordinates, err := kernel.NewCoordinates(latitude, longitude)
	if err != nil {
		return center.Patch{}, err
	}
	patch.Coordinates = &coordinates
	return patch, nil
}

func (c *UpdateCenterCommand) setCenterID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.centerID = id
	return nil
}

func (c *UpdateCenterCommand) setCapacity(capacity *string) error {
	if capacity == nil {
		return nil
	}
	parsed, err := kernel.ParseCapacity(*capacity)
	if err != nil {
		return err
	}

	c.patch.Capacity = &parsed
	return nil
}

func (c *UpdateCenterCommand) setStatus(status *string) error {
	if status == nil {
		return nil
	}
	parsed, err := center.ParseStatus(*status)
	if err != nil {
		return err
	}

	c.patch.Status = &parsed
	return nil
}

// setPosition range-checks each supplied half using the other bound's neutral value.
func (c *UpdateCenterCommand) setPosition(latitude, longitude *float64) error {
	lat, lon := 0.0, 0.0
	if latitude != nil {
		lat = *latitude
	}
	if longitude != nil {
		lon = *longitude
	}
	if _, err := kernel.NewCoordinates(lat, lon); err != nil {
		return err
	}

	c.latitude = latitude
	c.longitude = longitude
	return nil
}
