package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCenterCommandIsNotConstructed = errors.New(
	"CreateCenterCommand must be created via NewCreateCenterCommand constructor",
)

// MessageCenterCreated is returned to clients after a successful registration.
const MessageCenterCreated = "Logistics center created successfully."

// CreateCenterCommand represents a request to register a new logistics center.
// Capacity and status arrive in their wire form and are parsed here.
//
// Example:
//
//	coords, _ := kernel.NewCoordinates(40.4168, -3.7038)
//	cmd, err := NewCreateCenterCommand("Madrid Hub", "BMS", "AVAILABLE", 0, 10, coords)
//	if err != nil {
//	    return fmt.Errorf("invalid center data: %w", err)
//	}
//
//	handler := NewCreateCenterCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CreateCenterCommand struct { //nolint:recvcheck //using for validation
	name        string
	capacity    kernel.Capacity
	status      center.Status
	currentLoad int
	maxCapacity int
	coordinates kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewCreateCenterCommand validates the capacity descriptor, the status and the coordinates.
// The load invariant and the uniqueness of coordinates are checked by the handler.
func NewCreateCenterCommand(
	name string,
	capacity string,
	status string,
	currentLoad int,
	maxCapacity int,
	coordinates kernel.Coordinates,
) (CreateCenterCommand, error) {
	cmd := CreateCenterCommand{
		name:        name,
		currentLoad: currentLoad,
		maxCapacity: maxCapacity,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCapacity(capacity),
		cmd.setStatus(status),
		cmd.setCoordinates(coordinates),
	); err != nil {
		return CreateCenterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCenterCommand) Validate() error {
	return c.guard.Validate(ErrCreateCenterCommandIsNotConstructed)
}

func (c CreateCenterCommand) Name() string                    { return c.name }
func (c CreateCenterCommand) Capacity() kernel.Capacity       { return c.capacity }
func (c CreateCenterCommand) Status() center.Status           { return c.status }
func (c CreateCenterCommand) CurrentLoad() int                { return c.currentLoad }
func (c CreateCenterCommand) MaxCapacity() int                { return c.maxCapacity }
func (c CreateCenterCommand) Coordinates() kernel.Coordinates { return c.coordinates }

func (c *CreateCenterCommand) setCapacity(capacity string) error {
	parsed, err := kernel.ParseCapacity(capacity)
	if err != nil {
		return err
	}

	c.capacity = parsed
	return nil
}

func (c *CreateCenterCommand) setStatus(status string) error {
	parsed, err := center.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}

func (c *CreateCenterCommand) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}

	c.coordinates = coordinates
	return nil
}
