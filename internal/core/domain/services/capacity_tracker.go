package services

import (
	"mealflow/internal/core/domain/model/chef"
	"mealflow/internal/core/domain/model/driver"
)

// CapacityTracker compares derived loads with configured maximums. Loads are
// counted by the caller: delegations for chefs, non-terminal assignments for
// drivers.
type CapacityTracker struct{}

func NewCapacityTracker() CapacityTracker {
	return CapacityTracker{}
}

// CheckChef fails with errs.ErrChefUnavailable when the chef is inactive or
// full.
func (CapacityTracker) CheckChef(c *chef.Chef, delegations int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.CheckAvailability(delegations)
}

// DriverHasRoom is true for an eligible driver whose load is below its maximum.
func (CapacityTracker) DriverHasRoom(d *driver.Driver, currentLoad int) bool {
	return d.IsEligible() && d.HasCapacity(currentLoad)
}
