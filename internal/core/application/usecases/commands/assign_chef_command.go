package commands

import (
	"errors"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/guard"
)

var ErrAssignChefCommandIsNotConstructed = errors.New(
	"AssignChefCommand must be created via NewAssignChefCommand constructor",
)

// AssignChefCommand delegates a subscription to a chef.
//
// Example:
//
//	cmd, _ := NewAssignChefCommand(chefID, subscriptionID)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrChefUnavailable) {
//	    // pick another chef
//	}
type AssignChefCommand struct {
	chefID         kernel.UUID
	subscriptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignChefCommand creates a command that delegates a subscription to a chef.
// Returns an error if either ID is empty.
func NewAssignChefCommand(chefID, subscriptionID kernel.UUID) (AssignChefCommand, error) {
	if err := errors.Join(chefID.Validate(), subscriptionID.Validate()); err != nil {
		return AssignChefCommand{}, err
	}

	return AssignChefCommand{
		chefID:         chefID,
		subscriptionID: subscriptionID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c AssignChefCommand) Validate() error {
	return c.guard.Validate(ErrAssignChefCommandIsNotConstructed)
}

// ChefID returns the chef taking the subscription.
func (c AssignChefCommand) ChefID() kernel.UUID {
	return c.chefID
}

// SubscriptionID returns the subscription being delegated.
func (c AssignChefCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}
