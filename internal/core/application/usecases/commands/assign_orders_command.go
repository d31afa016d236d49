package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand triggers one batch assignment of every pending order.
// It carries only the name of whoever started the batch, used for logs and metrics.
//
// Example:
//
//	cmd := NewAssignOrdersCommand(TriggerHTTP)
//	assignments, err := handler.Handle(ctx, cmd)
type AssignOrdersCommand struct {
	trigger string

	guard guard.ConstructorGuard
}

// Batch triggers.
const (
	TriggerHTTP     = "http"
	TriggerSchedule = "schedule"
)

// NewAssignOrdersCommand creates a new command to trigger batch assignment.
func NewAssignOrdersCommand(trigger string) AssignOrdersCommand {
	return AssignOrdersCommand{
		trigger: trigger,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrdersCommandIsNotConstructed if validation fails.
func (c *AssignOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignOrdersCommandIsNotConstructed,
	)
}

// Trigger names the origin of the batch.
func (c *AssignOrdersCommand) Trigger() string {
	return c.trigger
}
