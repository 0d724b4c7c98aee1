// Package chef holds the Chef aggregate: a kitchen that prepares the meals
// of the subscriptions delegated to it.
package chef

import (
	"errors"
	"fmt"
	"strings"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrChefIsNotConstructed = errors.New("Chef must be created via NewChef constructor")

// Chef is an aggregate root. Its current load is not stored here: it is the
// number of delegations referencing the chef and is counted by the caller.
type Chef struct {
	kernel.Versioned

	id               kernel.UUID
	name             string
	active           bool
	maxDailyCapacity int
	kitchen          kernel.Address

	guard guard.ConstructorGuard
}

// NewChef creates an active chef.
func NewChef(id kernel.UUID, name string, maxDailyCapacity int, kitchen kernel.Address) (*Chef, error) {
	c := &Chef{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setMaxDailyCapacity(maxDailyCapacity),
		c.setKitchen(kitchen),
	); err != nil {
		return nil, err
	}

	return c, nil
}

type Snapshot struct {
	ID               kernel.UUID
	Name             string
	Active           bool
	MaxDailyCapacity int
	Kitchen          kernel.Address
	Version          int
}

func RestoreChef(s Snapshot) (*Chef, error) {
	c, err := NewChef(s.ID, s.Name, s.MaxDailyCapacity, s.Kitchen)
	if err != nil {
		return nil, err
	}
	c.active = s.Active
	c.Versioned = kernel.RestoreVersioned(s.Version)
	return c, nil
}

func (c *Chef) Snapshot() Snapshot {
	return Snapshot{
		ID:               c.id,
		Name:             c.name,
		Active:           c.active,
		MaxDailyCapacity: c.maxDailyCapacity,
		Kitchen:          c.kitchen,
		Version:          c.Version(),
	}
}

func (c *Chef) Validate() error {
	if c == nil {
		return ErrChefIsNotConstructed
	}
	return c.guard.Validate(ErrChefIsNotConstructed)
}

func (c *Chef) ID() kernel.UUID {
	return c.id
}

func (c *Chef) Name() string {
	return c.name
}

func (c *Chef) IsActive() bool {
	return c.active
}

func (c *Chef) MaxDailyCapacity() int {
	return c.maxDailyCapacity
}

func (c *Chef) Kitchen() kernel.Address {
	return c.kitchen
}

func (c *Chef) Activate() {
	c.active = true
}

func (c *Chef) Deactivate() {
	c.active = false
}

// CheckAvailability returns errs.ErrChefUnavailable when the chef is inactive
// or already cooks for maxDailyCapacity delegations.
func (c *Chef) CheckAvailability(currentLoad int) error {
	if !c.active {
		return errs.NewChefUnavailableError(c.id.String(), "inactive")
	}
	if currentLoad >= c.maxDailyCapacity {
		return errs.NewChefUnavailableError(c.id.String(),
			fmt.Sprintf("at capacity %d/%d", currentLoad, c.maxDailyCapacity))
	}
	return nil
}

func (c *Chef) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Chef) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Chef) setMaxDailyCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxDailyCapacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	c.maxDailyCapacity = capacity
	return nil
}

func (c *Chef) setKitchen(kitchen kernel.Address) error {
	if err := kitchen.Validate(); err != nil {
		return err
	}
	c.kitchen = kitchen
	return nil
}
