package commands

import (
	"context"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
)

// CreateCenterCommandHandler registers a new logistics center.
//
// Checks, in order: the command itself, a free position, then the load invariant.
type CreateCenterCommandHandler struct {
	uowFactory CenterUoWFactory
}

// NewCreateCenterCommandHandler creates a handler for center registration.
func NewCreateCenterCommandHandler(uowFactory CenterUoWFactory) CreateCenterCommandHandler {
	return CreateCenterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the center and returns the identity assigned by storage.
// Returns center.ErrCoordinatesTaken when another center already sits at the position.
func (h CreateCenterCommandHandler) Handle(ctx context.Context, cmd CreateCenterCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	centerRepo := uow.CenterRepository()

	taken, err := centerRepo.ExistsAtCoordinates(ctx, cmd.Coordinates())
	if err != nil {
		return kernel.ID{}, err
	}
	if taken {
		return kernel.ID{}, center.ErrCoordinatesTaken
	}

	c, err := center.NewCenter(
		cmd.Name(),
		cmd.Capacity(),
		cmd.Status(),
		cmd.CurrentLoad(),
		cmd.MaxCapacity(),
		cmd.Coordinates(),
	)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = centerRepo.Add(ctx, c); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return c.ID(), nil
}
