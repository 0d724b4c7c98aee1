package commands

import (
	"errors"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

type ConfirmPickupCommand struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command that records a driver pickup.
// Returns an error if the assignment ID is empty.
func NewConfirmPickupCommand(assignmentID kernel.UUID) (ConfirmPickupCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return ConfirmPickupCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// AssignmentID returns the assignment being picked up.
func (c ConfirmPickupCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
