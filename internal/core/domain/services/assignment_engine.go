package services

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Messages reported per order.
const (
	MessageAssigned           = "Order assigned"
	MessageNoSupportingCenter = "No available centers support the order type."
	MessageAllCentersFull     = "All centers are at maximum capacity."
)

// Batch level failures, returned before any order or center is touched.
var (
	// ErrNoPendingOrders is returned when the batch receives no orders.
	ErrNoPendingOrders = errs.NewConflictError("there is no pending orders at this time")
	// ErrNoAvailableCenters is returned when the batch receives no centers.
	ErrNoAvailableCenters = errs.NewConflictError("there are no available centers at this time")
)

// Assignment is the outcome of one order in a batch.
// Distance, CenterName and CenterID are set only when the order was assigned.
type Assignment struct {
	OrderID    kernel.ID
	CenterID   kernel.ID
	Distance   *float64
	CenterName *string
	Status     order.Status
	Message    string
}

// IsAssigned reports whether the order found a center.
func (a Assignment) IsAssigned() bool {
	return a.CenterName != nil
}

// AssignmentEngine places a batch of pending orders on available centers.
//
// Orders are processed one by one in the given order without backtracking:
//   - centers whose capacity lacks the order size are discarded
//   - of the rest, full centers are discarded
//   - the nearest remaining center (Haversine distance) takes the order
//
// A center's load increment is visible to the next orders of the same batch.
// Distance ties go to the center with the lowest identity.
//
// Example usage:
//
//	engine := services.NewAssignmentEngine()
//	assignments, err := engine.AssignAll(pendingOrders, availableCenters)
//	if errors.Is(err, services.ErrNoPendingOrders) {
//	    // nothing to do
//	}
type AssignmentEngine struct{}

// NewAssignmentEngine creates a new AssignmentEngine instance.
func NewAssignmentEngine() AssignmentEngine {
	return AssignmentEngine{}
}

// AssignAll returns exactly one Assignment per order, in input order.
//
// Preconditions, all checked before any mutation:
//   - orders is non-empty (ErrNoPendingOrders) and every order is PENDING
//   - centers is non-empty (ErrNoAvailableCenters) and every center is AVAILABLE
//
// Assigned orders move to ASSIGNED and their centers' load grows by one.
// Rejected orders stay PENDING. Callers persist the changed aggregates.
func (e AssignmentEngine) AssignAll(orders []*order.Order, centers []*center.Center) ([]Assignment, error) {
	if len(orders) == 0 {
		return nil, ErrNoPendingOrders
	}
	if len(centers) == 0 {
		return nil, ErrNoAvailableCenters
	}

	if err := e.validate(orders, centers); err != nil {
		return nil, err
	}

	working := slices.Clone(centers)
	slices.SortStableFunc(working, func(a, b *center.Center) int {
		return compareIDs(a.ID(), b.ID())
	})

	assignments := make([]Assignment, 0, len(orders))
	for _, o := range orders {
		assignment, err := e.assign(o, working)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

func (e AssignmentEngine) assign(o *order.Order, centers []*center.Center) (Assignment, error) {
	supporting := SupportingCenters(o.Size(), centers)
	if len(supporting) == 0 {
		return rejected(o, MessageNoSupportingCenter), nil
	}

	eligible := CentersWithSpareLoad(supporting)
	if len(eligible) == 0 {
		return rejected(o, MessageAllCentersFull), nil
	}

	nearest, distance := nearestCenter(o.Coordinates(), eligible)

	if err := nearest.TakeOrder(); err != nil {
		return Assignment{}, err
	}
	if err := o.AssignTo(nearest.Name()); err != nil {
		return Assignment{}, err
	}

	name := nearest.Name()
	return Assignment{
		OrderID:    o.ID(),
		CenterID:   nearest.ID(),
		Distance:   &distance,
		CenterName: &name,
		Status:     o.Status(),
		Message:    MessageAssigned,
	}, nil
}

func (e AssignmentEngine) validate(orders []*order.Order, centers []*center.Center) error {
	var errList []error
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("order #%d: %w", i, err))
			continue
		}
		if err := o.ValidateAssign(); err != nil {
			errList = append(errList, fmt.Errorf("order %s: %w", o.ID(), err))
		}
	}
	for i, c := range centers {
		if err := c.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("center #%d: %w", i, err))
			continue
		}
		if !c.IsAvailable() {
			errList = append(errList, fmt.Errorf("center %s: %w", c.ID(), center.ErrCenterIsNotAvailable))
		}
	}
	return errors.Join(errList...)
}

// nearestCenter expects centers sorted by identity, so keeping the first
// strict minimum resolves ties to the lowest identity.
func nearestCenter(target kernel.Coordinates, centers []*center.Center) (*center.Center, float64) {
	var (
		best         *center.Center
		bestDistance float64
	)

	for _, c := range centers {
		d := c.DistanceTo(target)
		if best == nil || d < bestDistance {
			best = c
			bestDistance = d
		}
	}

	return best, bestDistance
}

func rejected(o *order.Order, message string) Assignment {
	return Assignment{
		OrderID: o.ID(),
		Status:  o.Status(),
		Message: message,
	}
}

func compareIDs(a, b kernel.ID) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
