// Package assignment holds the DriverAssignment aggregate: one driver moving
// one target from a kitchen to a customer.
package assignment

import (
	"errors"
	"fmt"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const entityName = "assignment"

var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Estimate is the planned timing of an assignment.
type Estimate struct {
	PickupAt   time.Time
	DeliveryAt time.Time
	Duration   time.Duration
}

// Earnings is what the driver is credited for a delivered assignment.
type Earnings struct {
	Base  decimal.Decimal
	Bonus decimal.Decimal
	Total decimal.Decimal
}

// NewEarnings computes Total as Base + Bonus.
func NewEarnings(base, bonus decimal.Decimal) (Earnings, error) {
	if base.IsNegative() || bonus.IsNegative() {
		return Earnings{}, errs.NewValueIsInvalidErrorWithCause("earnings", fmt.Errorf("base %s and bonus %s must not be negative", base, bonus))
	}
	return Earnings{Base: base, Bonus: bonus, Total: base.Add(bonus)}, nil
}

type Assignment struct {
	kernel.Versioned

	id       kernel.UUID
	driverID kernel.UUID
	target   Target
	code     *ConfirmationCode
	status   Status

	pickup   kernel.Address
	dropoff  kernel.Address
	estimate Estimate

	assignedAt         time.Time
	pickedUpAt         *time.Time
	deliveredAt        *time.Time
	cancelledAt        *time.Time
	cancellationReason string

	earnings *Earnings

	guard guard.ConstructorGuard
}

// NewAssignment creates an Assigned assignment. code is nil for first-time
// customers.
func NewAssignment(
	id, driverID kernel.UUID,
	target Target,
	pickup, dropoff kernel.Address,
	estimate Estimate,
	code *ConfirmationCode,
	now time.Time,
) (*Assignment, error) {
	a := &Assignment{
		status:     Assigned,
		estimate:   estimate,
		code:       code,
		assignedAt: now.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setDriverID(driverID),
		a.setTarget(target),
		a.setAddresses(pickup, dropoff),
	); err != nil {
		return nil, err
	}

	return a, nil
}

type Snapshot struct {
	ID                 kernel.UUID
	DriverID           kernel.UUID
	Target             Target
	Code               *ConfirmationCode
	Status             Status
	Pickup             kernel.Address
	Dropoff            kernel.Address
	Estimate           Estimate
	AssignedAt         time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	Earnings           *Earnings
	Version            int
}

func RestoreAssignment(s Snapshot) (*Assignment, error) {
	a, err := NewAssignment(s.ID, s.DriverID, s.Target, s.Pickup, s.Dropoff, s.Estimate, s.Code, s.AssignedAt)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	if (s.DeliveredAt != nil) != (s.Status == Delivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveredAt", fmt.Errorf("deliveredAt does not match status %s", s.Status))
	}

	a.status = s.Status
	a.pickedUpAt = s.PickedUpAt
	a.deliveredAt = s.DeliveredAt
	a.cancelledAt = s.CancelledAt
	a.cancellationReason = s.CancellationReason
	a.earnings = s.Earnings
	a.Versioned = kernel.RestoreVersioned(s.Version)
	return a, nil
}

func (a *Assignment) Snapshot() Snapshot {
	return Snapshot{
		ID:                 a.id,
		DriverID:           a.driverID,
		Target:             a.target,
		Code:               a.code,
		Status:             a.status,
		Pickup:             a.pickup,
		Dropoff:            a.dropoff,
		Estimate:           a.estimate,
		AssignedAt:         a.assignedAt,
		PickedUpAt:         a.pickedUpAt,
		DeliveredAt:        a.deliveredAt,
		CancelledAt:        a.cancelledAt,
		CancellationReason: a.cancellationReason,
		Earnings:           a.earnings,
		Version:            a.Version(),
	}
}

func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) ID() kernel.UUID {
	return a.id
}

func (a *Assignment) DriverID() kernel.UUID {
	return a.driverID
}

func (a *Assignment) Target() Target {
	return a.target
}

func (a *Assignment) Status() Status {
	return a.status
}

func (a *Assignment) Pickup() kernel.Address {
	return a.pickup
}

func (a *Assignment) Dropoff() kernel.Address {
	return a.dropoff
}

func (a *Assignment) Estimate() Estimate {
	return a.estimate
}

func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

func (a *Assignment) PickedUpAt() *time.Time {
	return a.pickedUpAt
}

func (a *Assignment) DeliveredAt() *time.Time {
	return a.deliveredAt
}

func (a *Assignment) CancelledAt() *time.Time {
	return a.cancelledAt
}

func (a *Assignment) CancellationReason() string {
	return a.cancellationReason
}

func (a *Assignment) Earnings() *Earnings {
	return a.earnings
}

// HasConfirmationCode is false for first-time customers.
func (a *Assignment) HasConfirmationCode() bool {
	return a.code != nil
}

func (a *Assignment) ConfirmationCode() *ConfirmationCode {
	return a.code
}

func (a *Assignment) IsActive() bool {
	return !a.status.IsTerminal()
}

// ConfirmPickup moves Assigned to PickedUp.
func (a *Assignment) ConfirmPickup(now time.Time) error {
	if a.status != Assigned {
		return errs.NewInvalidStateError(entityName, a.status.String(), "confirm pickup")
	}
	at := now.UTC()
	a.pickedUpAt = &at
	a.status = PickedUp
	return nil
}

// ConfirmDelivery moves PickedUp to Delivered. When a code was issued the
// candidate must match it; a mismatch leaves the assignment PickedUp.
func (a *Assignment) ConfirmDelivery(candidate string, earnings Earnings, now time.Time) error {
	if a.status != PickedUp {
		return errs.NewInvalidStateError(entityName, a.status.String(), "confirm delivery")
	}
	if a.code != nil && !a.code.Matches(candidate) {
		return errs.ErrInvalidConfirmationCode
	}

	at := now.UTC()
	a.deliveredAt = &at
	a.earnings = &earnings
	a.status = Delivered
	return nil
}

// Cancel is allowed from Assigned and PickedUp.
func (a *Assignment) Cancel(reason string, now time.Time) error {
	if a.status.IsTerminal() {
		return errs.NewInvalidStateError(entityName, a.status.String(), "cancel")
	}
	at := now.UTC()
	a.cancelledAt = &at
	a.cancellationReason = reason
	a.status = Cancelled
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}
	a.driverID = id
	return nil
}

func (a *Assignment) setTarget(target Target) error {
	if err := target.Validate(); err != nil {
		return err
	}
	a.target = target
	return nil
}

func (a *Assignment) setAddresses(pickup, dropoff kernel.Address) error {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return err
	}
	a.pickup = pickup
	a.dropoff = dropoff
	return nil
}
