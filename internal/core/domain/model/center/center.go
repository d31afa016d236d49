package center

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for center operations.
var (
	// ErrCenterIsNotConstructed is returned when using an improperly initialized Center.
	ErrCenterIsNotConstructed = errors.New("Center must be created via NewCenter constructor")
	// ErrIDIsAlreadyBound is returned when storage tries to bind an identity twice.
	ErrIDIsAlreadyBound = errors.New("center id is already bound")
	// ErrNameIsRequired is returned for an empty or blank center name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLoadExceedsCapacity is returned when currentLoad would be greater than maxCapacity.
	ErrLoadExceedsCapacity = errs.NewConflictError("current load cannot exceed max capacity")
	// ErrCoordinatesTaken is returned when another center already sits at the same position.
	ErrCoordinatesTaken = errs.NewConflictError("there is already a logistics center in that position")
	// ErrCenterIsFull is returned by TakeOrder when currentLoad has reached maxCapacity.
	ErrCenterIsFull = errs.NewConflictError("center is at maximum capacity")
	// ErrCenterIsNotAvailable is returned by TakeOrder for an OCCUPIED center.
	ErrCenterIsNotAvailable = errs.NewConflictError("center is not available")
)

// Center is a logistics center that receives orders.
//
// Business rules:
//   - name is non-blank, capacity is a valid descriptor, status is AVAILABLE or OCCUPIED
//   - currentLoad and maxCapacity are non-negative and currentLoad <= maxCapacity
//   - the identity is assigned by storage when the center is first saved
//
// Example usage:
//
//	capacity, _ := kernel.ParseCapacity("BMS")
//	coords, _ := kernel.NewCoordinates(40.4168, -3.7038)
//	c, err := center.NewCenter("Madrid Hub", capacity, center.Available, 0, 10, coords)
//	if err != nil {
//	    // Handle validation error
//	}
type Center struct {
	// id is assigned by storage; zero until the center is persisted
	id kernel.ID
	// name is the human-readable name reported in assignments
	name string
	// capacity is the set of order sizes the center accepts
	capacity kernel.Capacity
	// status decides whether batch assignment considers the center
	status Status
	// currentLoad is the number of orders assigned so far
	currentLoad int
	// maxCapacity is the maximum number of orders the center holds
	maxCapacity int
	// coordinates is the fixed position of the center
	coordinates kernel.Coordinates
	// guard ensures the center was properly constructed
	guard guard.ConstructorGuard
}

// NewCenter creates a center that has not been stored yet.
//
// All fields are validated and every failure is reported, joined with errors.Join.
// Uniqueness of coordinates is a cross-aggregate rule checked by the caller.
func NewCenter(
	name string,
	capacity kernel.Capacity,
	status Status,
	currentLoad int,
	maxCapacity int,
	coordinates kernel.Coordinates,
) (*Center, error) {
	center := &Center{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		center.setName(name),
		center.setCapacity(capacity),
		center.setStatus(status),
		center.setLoad(currentLoad, maxCapacity),
		center.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return center, nil
}

// RestoreCenter reconstructs a Center from persistent storage.
// The same rules as NewCenter apply and the identity must be assigned.
func RestoreCenter(
	id kernel.ID,
	name string,
	capacity kernel.Capacity,
	status Status,
	currentLoad int,
	maxCapacity int,
	coordinates kernel.Coordinates,
) (*Center, error) {
	center := &Center{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		center.setID(id),
		center.setName(name),
		center.setCapacity(capacity),
		center.setStatus(status),
		center.setLoad(currentLoad, maxCapacity),
		center.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return center, nil
}

// Validate checks if the Center was created through a constructor.
func (c *Center) Validate() error {
	if c == nil {
		return ErrCenterIsNotConstructed
	}
	return c.guard.Validate(ErrCenterIsNotConstructed)
}

// IsEqual compares two centers by identity.
func (c *Center) IsEqual(other *Center) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Center) ID() kernel.ID {
	return c.id
}

func (c *Center) Name() string {
	return c.name
}

func (c *Center) Capacity() kernel.Capacity {
	return c.capacity
}

func (c *Center) Status() Status {
	return c.status
}

func (c *Center) CurrentLoad() int {
	return c.currentLoad
}

func (c *Center) MaxCapacity() int {
	return c.maxCapacity
}

func (c *Center) Coordinates() kernel.Coordinates {
	return c.coordinates
}

// Supports reports whether the center's capacity includes the given order size.
func (c *Center) Supports(size kernel.Size) bool {
	return c.capacity.Contains(size)
}

// HasSpareLoad reports whether one more order fits: currentLoad < maxCapacity.
func (c *Center) HasSpareLoad() bool {
	return c.currentLoad < c.maxCapacity
}

// IsAvailable reports whether the center's status is AVAILABLE.
func (c *Center) IsAvailable() bool {
	return c.status == Available
}

// DistanceTo returns the great-circle distance in kilometers from the center to a position.
func (c *Center) DistanceTo(target kernel.Coordinates) float64 {
	return c.coordinates.DistanceTo(target)
}

// TakeOrder reserves one unit of load for a newly assigned order.
//
// State changes:
//   - currentLoad is incremented by one
//
// The status is left as is; a full center simply stops passing HasSpareLoad.
func (c *Center) TakeOrder() error {
	if !c.IsAvailable() {
		return ErrCenterIsNotAvailable
	}
	if !c.HasSpareLoad() {
		return ErrCenterIsFull
	}

	c.currentLoad++
	return nil
}

// Patch is a partial update of a center. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Capacity    *kernel.Capacity
	Status      *Status
	CurrentLoad *int
	MaxCapacity *int
	Coordinates *kernel.Coordinates
}

// MovesCenter reports whether applying the patch changes the center's position.
// Callers use it to decide whether the uniqueness of coordinates must be re-checked.
func (p Patch) MovesCenter(c *Center) bool {
	return p.Coordinates != nil && !p.Coordinates.IsEqual(c.coordinates)
}

// Update applies a patch atomically: either every field is changed or, on any
// validation failure, nothing is. The load invariant is checked against the
// resulting values, so load and maxCapacity can be changed together.
func (c *Center) Update(p Patch) error {
	next := *c

	var errList []error
	if p.Name != nil {
		errList = append(errList, next.setName(*p.Name))
	}
	if p.Capacity != nil {
		errList = append(errList, next.setCapacity(*p.Capacity))
	}
	if p.Status != nil {
		errList = append(errList, next.setStatus(*p.Status))
	}
	if p.Coordinates != nil {
		errList = append(errList, next.setCoordinates(*p.Coordinates))
	}

	currentLoad, maxCapacity := c.currentLoad, c.maxCapacity
	if p.CurrentLoad != nil {
		currentLoad = *p.CurrentLoad
	}
	if p.MaxCapacity != nil {
		maxCapacity = *p.MaxCapacity
	}
	errList = append(errList, next.setLoad(currentLoad, maxCapacity))

	if err := errors.Join(errList...); err != nil {
		return err
	}

	*c = next
	return nil
}

// BindID records the identity assigned by storage. It can only be called once.
func (c *Center) BindID(id kernel.ID) error {
	if !c.id.IsZero() {
		return ErrIDIsAlreadyBound
	}
	return c.setID(id)
}

func (c *Center) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Center) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Center) setCapacity(capacity kernel.Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}

	c.capacity = capacity
	return nil
}

func (c *Center) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

// setLoad checks both numbers together since the invariant spans them.
func (c *Center) setLoad(currentLoad, maxCapacity int) error {
	if maxCapacity < 0 {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity, 0, "unbounded")
	}
	if currentLoad < 0 {
		return errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, maxCapacity)
	}
	if currentLoad > maxCapacity {
		return fmt.Errorf("%w: %d > %d", ErrLoadExceedsCapacity, currentLoad, maxCapacity)
	}

	c.currentLoad = currentLoad
	c.maxCapacity = maxCapacity
	return nil
}

func (c *Center) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}

	c.coordinates = coordinates
	return nil
}
