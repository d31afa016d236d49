package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// MessageOrderCreated is returned to clients after a successful order creation.
const MessageOrderCreated = "Order created successfully in PENDING status."

// CreateOrderCommand represents a request to create a new customer order.
//
// Example:
//
//	coords, _ := kernel.NewCoordinates(40.4168, -3.7038)
//	cmd, err := NewCreateOrderCommand(1001, "S", coords)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID  int64
	size        kernel.Size
	coordinates kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks, in order, the customer id, the size symbol and the coordinates.
// Returns an error if any validation fails.
func NewCreateOrderCommand(customerID int64, size string, coordinates kernel.Coordinates) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setSize(size),
		cmd.setCoordinates(coordinates),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Size returns the size class of the order.
func (c CreateOrderCommand) Size() kernel.Size {
	return c.size
}

// Coordinates returns the delivery position.
func (c CreateOrderCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID == 0 {
		return order.ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setSize(size string) error {
	parsed, err := kernel.ParseSize(size)
	if err != nil {
		return err
	}

	c.size = parsed
	return nil
}

func (c *CreateOrderCommand) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}

	c.coordinates = coordinates
	return nil
}
