package commands

import (
	"errors"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/pkg/guard"
)

var ErrCreateDriverAssignmentCommandIsNotConstructed = errors.New(
	"CreateDriverAssignmentCommand must be created via NewCreateDriverAssignmentCommand constructor",
)

// CreateDriverAssignmentCommand dispatches a driver for either an order or a
// subscription day.
type CreateDriverAssignmentCommand struct {
	target assignment.Target

	guard guard.ConstructorGuard
}

// NewCreateDriverAssignmentCommand creates a command that dispatches a driver to target.
// Returns an error if the target is empty.
func NewCreateDriverAssignmentCommand(target assignment.Target) (CreateDriverAssignmentCommand, error) {
	if err := target.Validate(); err != nil {
		return CreateDriverAssignmentCommand{}, err
	}

	return CreateDriverAssignmentCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c CreateDriverAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverAssignmentCommandIsNotConstructed)
}

// Target returns the order or subscription day to deliver.
func (c CreateDriverAssignmentCommand) Target() assignment.Target {
	return c.target
}
