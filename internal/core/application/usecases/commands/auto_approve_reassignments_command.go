package commands

import (
	"errors"

	"mealflow/internal/pkg/guard"
)

var ErrAutoApproveReassignmentsCommandIsNotConstructed = errors.New(
	"AutoApproveReassignmentsCommand must be created via NewAutoApproveReassignmentsCommand constructor",
)

// AutoApproveReassignmentsCommand triggers one sweep over aged low-priority
// requests. It is sent by the aging job and by the sweep CLI command.
type AutoApproveReassignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoApproveReassignmentsCommand creates a sweep command.
func NewAutoApproveReassignmentsCommand() AutoApproveReassignmentsCommand {
	return AutoApproveReassignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate reports whether the command was built through its constructor.
func (c AutoApproveReassignmentsCommand) Validate() error {
	return c.guard.Validate(ErrAutoApproveReassignmentsCommandIsNotConstructed)
}
