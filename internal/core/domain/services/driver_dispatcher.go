package services

import (
	"fmt"
	"slices"

	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/pkg/errs"
)

// Candidate is a driver together with its current number of non-terminal
// assignments.
type Candidate struct {
	Driver      *driver.Driver
	CurrentLoad int
}

// DriverDispatcher picks the least-loaded driver that still has room. It does
// not look at distance; among equally loaded drivers the input order wins, so
// the caller decides the preference (service area, idle time).
type DriverDispatcher struct {
	capacity CapacityTracker
}

func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{capacity: NewCapacityTracker()}
}

// Select returns the chosen driver or an error wrapping errs.ErrNoCapacity.
func (d DriverDispatcher) Select(candidates []Candidate) (*driver.Driver, error) {
	ranked, err := d.Rank(candidates)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, fmt.Errorf("%w: none of %d drivers can take another delivery", errs.ErrNoCapacity, len(candidates))
	}
	return ranked[0].Driver, nil
}

// Rank keeps candidates with room and orders them by ascending load, stable
// on input order.
func (d DriverDispatcher) Rank(candidates []Candidate) ([]Candidate, error) {
	eligible := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Driver.Validate(); err != nil {
			return nil, err
		}
		if d.capacity.DriverHasRoom(c.Driver, c.CurrentLoad) {
			eligible = append(eligible, c)
		}
	}

	slices.SortStableFunc(eligible, func(a, b Candidate) int {
		return a.CurrentLoad - b.CurrentLoad
	})
	return eligible, nil
}
