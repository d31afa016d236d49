package order

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDIsAlreadyBound is returned when storage tries to bind an identity twice.
	ErrIDIsAlreadyBound = errors.New("order id is already bound")

	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customerId")
	ErrCenterNameIsRequired = errs.NewValueIsRequiredError("assignedCenter")
)

// Order is a customer order to be placed at a logistics center.
//
// Order follows these invariants:
//   - customerId is positive, size is S, M or B, coordinates are valid
//   - a new order is PENDING with no assigned center
//   - AssignTo moves it to ASSIGNED exactly once and records the center name
type Order struct {
	// id is assigned by storage; zero until the order is persisted
	id kernel.ID

	// customerID identifies the customer who placed the order
	customerID int64

	// size is the size class used to match center capacity
	size kernel.Size

	// status represents the current state in the order lifecycle
	status Status

	// assignedCenter is the name of the center (nil while pending)
	assignedCenter *string

	// coordinates is the delivery position of the order
	coordinates kernel.Coordinates

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a PENDING order with no center and no identity yet.
// The identity is bound by the repository when the order is first stored.
//
// Example:
//
//	coords, _ := kernel.NewCoordinates(40.4168, -3.7038)
//	o, err := order.NewOrder(1001, kernel.Small, coords)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerID int64, size kernel.Size, coordinates kernel.Coordinates) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setSize(size),
		order.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from persisted state, re-checking every invariant.
func RestoreOrder(
	id kernel.ID,
	customerID int64,
	size kernel.Size,
	status Status,
	assignedCenter *string,
	coordinates kernel.Coordinates,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setSize(size),
		order.setCoordinates(coordinates),
		order.setStatus(status, assignedCenter),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the storage-assigned identity, zero before the first save.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Size returns the size class of the order.
func (o *Order) Size() kernel.Size {
	return o.size
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AssignedCenter returns the name of the assigned center, or nil while pending.
func (o *Order) AssignedCenter() *string {
	if o.assignedCenter == nil {
		return nil
	}
	name := *o.assignedCenter
	return &name
}

// Coordinates returns the delivery position.
func (o *Order) Coordinates() kernel.Coordinates {
	return o.coordinates
}

// ValidateAssign checks that the order can still be assigned.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// AssignTo binds the order to the named center and moves it to ASSIGNED.
// A second call fails because ASSIGNED is terminal.
func (o *Order) AssignTo(centerName string) error {
	if strings.TrimSpace(centerName) == "" {
		return ErrCenterNameIsRequired
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedCenter = &centerName
	return nil
}

// BindID records the identity assigned by storage. It can only be called once.
func (o *Order) BindID(id kernel.ID) error {
	if !o.id.IsZero() {
		return ErrIDIsAlreadyBound
	}
	return o.setID(id)
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID == 0 {
		return ErrCustomerIDIsRequired
	}
	if customerID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId", fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	o.size = size
	return nil
}

func (o *Order) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	o.coordinates = coordinates
	return nil
}

func (o *Order) setStatus(status Status, assignedCenter *string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCenter(assignedCenter != nil); err != nil {
		return err
	}
	if assignedCenter != nil {
		name := *assignedCenter
		o.assignedCenter = &name
	}
	o.status = status
	return nil
}
