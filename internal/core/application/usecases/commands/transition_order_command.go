package commands

import (
	"errors"
	"strings"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand moves an order to a new status. The reason is kept
// for cancellations and ignored otherwise.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Confirmed, "")
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct {
	orderID kernel.UUID
	target  order.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command that moves an order to target.
// Returns an error if the order ID or target is invalid.
func NewTransitionOrderCommand(orderID kernel.UUID, target order.Status, reason string) (TransitionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		target:  target,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Reason returns the free-form reason recorded with the change.
func (c TransitionOrderCommand) Reason() string {
	return c.reason
}
