package commands

import (
	"errors"
	"strings"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/guard"
)

var ErrResolveReassignmentCommandIsNotConstructed = errors.New(
	"ResolveReassignmentCommand must be created via NewResolveReassignmentCommand constructor",
)

type ResolveReassignmentCommand struct {
	requestID kernel.UUID
	approve   bool
	newChefID *kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewResolveReassignmentCommand approves or rejects a request. On approval
// newChefID overrides the chef named on the request.
func NewResolveReassignmentCommand(
	requestID kernel.UUID,
	approve bool,
	newChefID *kernel.UUID,
	note string,
) (ResolveReassignmentCommand, error) {
	var chefErr error
	if newChefID != nil {
		chefErr = newChefID.Validate()
	}
	if err := errors.Join(requestID.Validate(), chefErr); err != nil {
		return ResolveReassignmentCommand{}, err
	}

	return ResolveReassignmentCommand{
		requestID: requestID,
		approve:   approve,
		newChefID: newChefID,
		note:      strings.TrimSpace(note),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c ResolveReassignmentCommand) Validate() error {
	return c.guard.Validate(ErrResolveReassignmentCommandIsNotConstructed)
}

// RequestID returns the request being resolved.
func (c ResolveReassignmentCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Approve reports whether the request is approved.
func (c ResolveReassignmentCommand) Approve() bool {
	return c.approve
}

// NewChefID returns the chef chosen by the reviewer, or nil to use the requested one.
func (c ResolveReassignmentCommand) NewChefID() *kernel.UUID {
	return c.newChefID
}

// Note returns the reviewer's note.
func (c ResolveReassignmentCommand) Note() string {
	return c.note
}
