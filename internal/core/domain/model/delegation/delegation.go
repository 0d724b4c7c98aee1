// Package delegation tracks which chef and driver serve a subscription and the
// per-day timeline of its meals.
package delegation

import (
	"errors"
	"slices"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

const entityName = "timeline entry"

var ErrDelegationIsNotConstructed = errors.New("Delegation must be created via NewDelegation constructor")

// Entry is one meal slot of the timeline.
type Entry struct {
	Slot      kernel.MealSlot
	Status    EntryStatus
	UpdatedAt time.Time
}

// Delegation is an aggregate root keyed by subscription. The timeline is kept
// sorted by (date, meal time) with at most one entry per slot.
type Delegation struct {
	kernel.Versioned

	id             kernel.UUID
	subscriptionID kernel.UUID
	chefID         *kernel.UUID
	driverID       *kernel.UUID
	chefAssignedAt *time.Time
	timeline       []Entry

	guard guard.ConstructorGuard
}

func NewDelegation(id, subscriptionID kernel.UUID) (*Delegation, error) {
	d := &Delegation{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), subscriptionID.Validate()); err != nil {
		return nil, err
	}
	d.id = id
	d.subscriptionID = subscriptionID
	return d, nil
}

type Snapshot struct {
	ID             kernel.UUID
	SubscriptionID kernel.UUID
	ChefID         *kernel.UUID
	DriverID       *kernel.UUID
	ChefAssignedAt *time.Time
	Timeline       []Entry
	Version        int
}

func RestoreDelegation(s Snapshot) (*Delegation, error) {
	d, err := NewDelegation(s.ID, s.SubscriptionID)
	if err != nil {
		return nil, err
	}

	for _, e := range s.Timeline {
		if err = errors.Join(e.Slot.Validate(), e.Status.Validate()); err != nil {
			return nil, err
		}
		if _, found := d.find(e.Slot); found {
			return nil, errs.NewValueIsInvalidErrorWithCause("timeline", errors.New("duplicate slot "+e.Slot.String()))
		}
		d.insert(e)
	}

	d.chefID = s.ChefID
	d.driverID = s.DriverID
	d.chefAssignedAt = s.ChefAssignedAt
	d.Versioned = kernel.RestoreVersioned(s.Version)
	return d, nil
}

func (d *Delegation) Snapshot() Snapshot {
	return Snapshot{
		ID:             d.id,
		SubscriptionID: d.subscriptionID,
		ChefID:         d.chefID,
		DriverID:       d.driverID,
		ChefAssignedAt: d.chefAssignedAt,
		Timeline:       d.Timeline(),
		Version:        d.Version(),
	}
}

func (d *Delegation) Validate() error {
	if d == nil {
		return ErrDelegationIsNotConstructed
	}
	return d.guard.Validate(ErrDelegationIsNotConstructed)
}

func (d *Delegation) ID() kernel.UUID {
	return d.id
}

func (d *Delegation) SubscriptionID() kernel.UUID {
	return d.subscriptionID
}

func (d *Delegation) ChefID() *kernel.UUID {
	return d.chefID
}

func (d *Delegation) DriverID() *kernel.UUID {
	return d.driverID
}

func (d *Delegation) ChefAssignedAt() *time.Time {
	return d.chefAssignedAt
}

// Timeline returns a copy ordered by (date, meal time).
func (d *Delegation) Timeline() []Entry {
	return slices.Clone(d.timeline)
}

func (d *Delegation) AssignChef(chefID kernel.UUID, now time.Time) error {
	if err := chefID.Validate(); err != nil {
		return err
	}
	at := now.UTC()
	d.chefID = &chefID
	d.chefAssignedAt = &at
	return nil
}

func (d *Delegation) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	d.driverID = &driverID
	return nil
}

// ScheduleMeal adds a pending entry for slot unless one already exists.
func (d *Delegation) ScheduleMeal(slot kernel.MealSlot, now time.Time) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if _, found := d.find(slot); found {
		return nil
	}
	d.insert(Entry{Slot: slot, Status: EntryPending, UpdatedAt: now.UTC()})
	return nil
}

func (d *Delegation) MarkMealReady(slot kernel.MealSlot, now time.Time) error {
	return d.advance(slot, EntryReady, now)
}

func (d *Delegation) MarkMealDelivered(slot kernel.MealSlot, now time.Time) error {
	return d.advance(slot, EntryDelivered, now)
}

// Status derives the delegation status:
//   - no chef: NotAssigned
//   - chef and empty timeline: Assigned
//   - otherwise from the latest entry: delivered -> Delivered,
//     ready -> Ready, anything else -> InProgress
func (d *Delegation) Status() Status {
	if d.chefID == nil {
		return NotAssigned
	}
	if len(d.timeline) == 0 {
		return Assigned
	}

	switch d.timeline[len(d.timeline)-1].Status { //nolint:exhaustive // everything else is in progress
	case EntryDelivered:
		return Delivered
	case EntryReady:
		return Ready
	default:
		return InProgress
	}
}

// advance appends an entry for slot or moves the existing one forward.
// Re-applying the current status is a no-op; moving backwards fails with
// errs.ErrInvalidTransition.
func (d *Delegation) advance(slot kernel.MealSlot, target EntryStatus, now time.Time) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	idx, found := d.find(slot)
	if !found {
		d.insert(Entry{Slot: slot, Status: target, UpdatedAt: now.UTC()})
		return nil
	}

	current := d.timeline[idx].Status
	switch {
	case current == target:
		return nil
	case current > target:
		return errs.NewInvalidTransitionError(entityName, current.String(), target.String())
	}

	d.timeline[idx].Status = target
	d.timeline[idx].UpdatedAt = now.UTC()
	return nil
}

func (d *Delegation) find(slot kernel.MealSlot) (int, bool) {
	for i, e := range d.timeline {
		if e.Slot.IsEqual(slot) {
			return i, true
		}
	}
	return -1, false
}

func (d *Delegation) insert(e Entry) {
	pos, _ := slices.BinarySearchFunc(d.timeline, e, func(a, b Entry) int {
		switch {
		case a.Slot.Before(b.Slot):
			return -1
		case b.Slot.Before(a.Slot):
			return 1
		default:
			return 0
		}
	})
	d.timeline = slices.Insert(d.timeline, pos, e)
}
