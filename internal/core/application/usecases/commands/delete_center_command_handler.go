package commands

import (
	"context"
)

// DeleteCenterCommandHandler removes a stored center.
// Orders already assigned keep the center name they were given.
type DeleteCenterCommandHandler struct {
	uowFactory CenterUoWFactory
}

func NewDeleteCenterCommandHandler(uowFactory CenterUoWFactory) DeleteCenterCommandHandler {
	return DeleteCenterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectNotFound for an unknown center.
func (h DeleteCenterCommandHandler) Handle(ctx context.Context, cmd DeleteCenterCommand) error {
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

	if err := uow.CenterRepository().Delete(ctx, cmd.CenterID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
