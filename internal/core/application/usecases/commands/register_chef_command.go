package commands

import (
	"errors"
	"strings"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrRegisterChefCommandIsNotConstructed = errors.New(
	"RegisterChefCommand must be created via NewRegisterChefCommand constructor",
)

// RegisterChefCommand onboards a chef with the kitchen drivers pick meals up
// from. Capacity is the number of subscriptions the chef can serve at once.
type RegisterChefCommand struct {
	chefID   kernel.UUID
	name     string
	capacity int
	kitchen  kernel.Address

	guard guard.ConstructorGuard
}

// NewRegisterChefCommand creates a command that registers a chef.
// Returns an error if any field fails validation.
func NewRegisterChefCommand(chefID kernel.UUID, name string, capacity int, kitchen kernel.Address) (RegisterChefCommand, error) {
	name = strings.TrimSpace(name)

	var nameErr, capacityErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if capacity <= 0 {
		capacityErr = errs.NewValueIsInvalidError("maxDailyCapacity")
	}

	if err := errors.Join(chefID.Validate(), nameErr, capacityErr, kitchen.Validate()); err != nil {
		return RegisterChefCommand{}, err
	}

	return RegisterChefCommand{
		chefID:   chefID,
		name:     name,
		capacity: capacity,
		kitchen:  kitchen,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c RegisterChefCommand) Validate() error {
	return c.guard.Validate(ErrRegisterChefCommandIsNotConstructed)
}

// ChefID returns the ID of the new chef.
func (c RegisterChefCommand) ChefID() kernel.UUID {
	return c.chefID
}

// Name returns the chef's display name.
func (c RegisterChefCommand) Name() string {
	return c.name
}

// Capacity returns how many active subscriptions the chef can take.
func (c RegisterChefCommand) Capacity() int {
	return c.capacity
}

// Kitchen returns the kitchen address.
func (c RegisterChefCommand) Kitchen() kernel.Address {
	return c.kitchen
}
