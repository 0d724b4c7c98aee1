package commands

import (
	"errors"
	"strings"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/reassignment"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrRequestReassignmentCommandIsNotConstructed = errors.New(
	"RequestReassignmentCommand must be created via NewRequestReassignmentCommand constructor",
)

// RequestReassignmentCommand queues a request to move a subscription to
// another chef. RequestedChefID is optional.
type RequestReassignmentCommand struct {
	subscriptionID  kernel.UUID
	reason          string
	priority        reassignment.Priority
	requestedBy     kernel.UUID
	requestedChefID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestReassignmentCommand creates a command that asks to move a subscription to another chef.
// Returns an error if any field fails validation.
func NewRequestReassignmentCommand(
	subscriptionID kernel.UUID,
	reason string,
	priority reassignment.Priority,
	requestedBy kernel.UUID,
	requestedChefID *kernel.UUID,
) (RequestReassignmentCommand, error) {
	reason = strings.TrimSpace(reason)

	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	var chefErr error
	if requestedChefID != nil {
		chefErr = requestedChefID.Validate()
	}

	if err := errors.Join(
		subscriptionID.Validate(),
		reasonErr,
		priority.Validate(),
		requestedBy.Validate(),
		chefErr,
	); err != nil {
		return RequestReassignmentCommand{}, err
	}

	return RequestReassignmentCommand{
		subscriptionID:  subscriptionID,
		reason:          reason,
		priority:        priority,
		requestedBy:     requestedBy,
		requestedChefID: requestedChefID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c RequestReassignmentCommand) Validate() error {
	return c.guard.Validate(ErrRequestReassignmentCommandIsNotConstructed)
}

// SubscriptionID returns the subscription to move.
func (c RequestReassignmentCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

// Reason returns why the move was requested.
func (c RequestReassignmentCommand) Reason() string {
	return c.reason
}

// Priority returns how urgently the request should be handled.
func (c RequestReassignmentCommand) Priority() reassignment.Priority {
	return c.priority
}

// RequestedBy returns who filed the request.
func (c RequestReassignmentCommand) RequestedBy() kernel.UUID {
	return c.requestedBy
}

// RequestedChefID returns the preferred chef, or nil if any chef will do.
func (c RequestReassignmentCommand) RequestedChefID() *kernel.UUID {
	return c.requestedChefID
}
