package commands

import (
	"context"

	"dispatch/internal/core/domain/model/center"
)

// UpdateCenterCommandHandler applies a partial update to a stored center.
// The uniqueness of coordinates is re-checked only when the position changes.
type UpdateCenterCommandHandler struct {
	uowFactory CenterUoWFactory
}

// NewUpdateCenterCommandHandler creates a handler for center updates.
func NewUpdateCenterCommandHandler(uowFactory CenterUoWFactory) UpdateCenterCommandHandler {
	return UpdateCenterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the center, applies the changes and stores it.
// Returns errs.ErrObjectNotFound for an unknown center.
func (h UpdateCenterCommandHandler) Handle(ctx context.Context, cmd UpdateCenterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	centerRepo := uow.CenterRepository()

	c, err := centerRepo.Get(ctx, cmd.CenterID())
	if err != nil {
		return err
	}

	patch, err := cmd.PatchFor(c)
	if err != nil {
		return err
	}
	moves := patch.MovesCenter(c)

	if err = c.Update(patch); err != nil {
		return err
	}

	if moves {
		taken, err := centerRepo.ExistsAtCoordinates(ctx, c.Coordinates())
		if err != nil {
			return err
		}
		if taken {
			return center.ErrCoordinatesTaken
		}
	}

	if err = centerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
