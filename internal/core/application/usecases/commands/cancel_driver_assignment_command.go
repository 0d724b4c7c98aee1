package commands

import (
	"errors"
	"strings"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/guard"
)

var ErrCancelDriverAssignmentCommandIsNotConstructed = errors.New(
	"CancelDriverAssignmentCommand must be created via NewCancelDriverAssignmentCommand constructor",
)

type CancelDriverAssignmentCommand struct {
	assignmentID kernel.UUID
	reason       string

	guard guard.ConstructorGuard
}

// NewCancelDriverAssignmentCommand creates a command that cancels a driver assignment.
// Returns an error if the assignment ID is empty.
func NewCancelDriverAssignmentCommand(assignmentID kernel.UUID, reason string) (CancelDriverAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return CancelDriverAssignmentCommand{}, err
	}

	return CancelDriverAssignmentCommand{
		assignmentID: assignmentID,
		reason:       strings.TrimSpace(reason),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c CancelDriverAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelDriverAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment to cancel.
func (c CancelDriverAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Reason returns the free-form cancellation reason.
func (c CancelDriverAssignmentCommand) Reason() string {
	return c.reason
}
