package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteCenterCommandIsNotConstructed = errors.New(
	"DeleteCenterCommand must be created via NewDeleteCenterCommand constructor",
)

// MessageCenterDeleted is returned to clients after a successful removal.
const MessageCenterDeleted = "Logistics center deleted successfully."

// DeleteCenterCommand removes a center by identity.
type DeleteCenterCommand struct { //nolint:recvcheck //using for validation
	centerID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteCenterCommand(centerID kernel.ID) (DeleteCenterCommand, error) {
	if err := centerID.Validate(); err != nil {
		return DeleteCenterCommand{}, err
	}

	return DeleteCenterCommand{
		centerID: centerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCenterCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCenterCommandIsNotConstructed)
}

func (c DeleteCenterCommand) CenterID() kernel.ID {
	return c.centerID
}
