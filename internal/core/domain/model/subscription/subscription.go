// Package subscription holds the recurring meal plan a customer pays for.
// A subscription becomes Active on its first successful delivery.
package subscription

import (
	"errors"
	"fmt"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrSubscriptionIsNotConstructed = errors.New("Subscription must be created via NewSubscription constructor")

type Status int

const (
	StatusUnknown Status = iota
	PendingActivation
	Active
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		PendingActivation: "PendingActivation",
		Active:            "Active",
		Cancelled:         "Cancelled",
	}
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid subscription status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

type Subscription struct {
	kernel.Versioned

	id            kernel.UUID
	customerID    kernel.UUID
	status        Status
	startDate     time.Time
	durationWeeks int
	activatedAt   *time.Time

	guard guard.ConstructorGuard
}

func NewSubscription(id, customerID kernel.UUID, startDate time.Time, durationWeeks int) (*Subscription, error) {
	s := &Subscription{
		status: PendingActivation,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomerID(customerID),
		s.setStartDate(startDate),
		s.setDurationWeeks(durationWeeks),
	); err != nil {
		return nil, err
	}

	return s, nil
}

type Snapshot struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	Status        Status
	StartDate     time.Time
	DurationWeeks int
	ActivatedAt   *time.Time
	Version       int
}

func RestoreSubscription(snap Snapshot) (*Subscription, error) {
	s, err := NewSubscription(snap.ID, snap.CustomerID, snap.StartDate, snap.DurationWeeks)
	if err != nil {
		return nil, err
	}
	if err = snap.Status.Validate(); err != nil {
		return nil, err
	}
	if snap.Status == Active && snap.ActivatedAt == nil {
		return nil, errs.NewValueIsRequiredError("activatedAt")
	}

	s.status = snap.Status
	s.activatedAt = snap.ActivatedAt
	s.Versioned = kernel.RestoreVersioned(snap.Version)
	return s, nil
}

func (s *Subscription) Snapshot() Snapshot {
	return Snapshot{
		ID:            s.id,
		CustomerID:    s.customerID,
		Status:        s.status,
		StartDate:     s.startDate,
		DurationWeeks: s.durationWeeks,
		ActivatedAt:   s.activatedAt,
		Version:       s.Version(),
	}
}

func (s *Subscription) Validate() error {
	if s == nil {
		return ErrSubscriptionIsNotConstructed
	}
	return s.guard.Validate(ErrSubscriptionIsNotConstructed)
}

func (s *Subscription) ID() kernel.UUID {
	return s.id
}

func (s *Subscription) CustomerID() kernel.UUID {
	return s.customerID
}

func (s *Subscription) Status() Status {
	return s.status
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) DurationWeeks() int {
	return s.durationWeeks
}

func (s *Subscription) ActivatedAt() *time.Time {
	return s.activatedAt
}

// EndDate is the first day after the plan.
func (s *Subscription) EndDate() time.Time {
	return s.startDate.AddDate(0, 0, 7*s.durationWeeks)
}

// Activate is called on the first delivery. It returns false when the
// subscription was already active, so callers can skip the write.
func (s *Subscription) Activate(now time.Time) (bool, error) {
	switch s.status { //nolint:exhaustive // unknown is rejected at construction
	case Active:
		return false, nil
	case Cancelled:
		return false, errs.NewInvalidStateError("subscription", s.status.String(), "activate")
	}

	at := now.UTC()
	s.activatedAt = &at
	s.status = Active
	return true, nil
}

func (s *Subscription) Cancel() error {
	if s.status == Cancelled {
		return errs.NewInvalidStateError("subscription", s.status.String(), "cancel")
	}
	s.status = Cancelled
	return nil
}

func (s *Subscription) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Subscription) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	s.customerID = id
	return nil
}

func (s *Subscription) setStartDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	y, m, d := date.Date()
	s.startDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}

func (s *Subscription) setDurationWeeks(weeks int) error {
	if weeks <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("durationWeeks", fmt.Errorf("%d is not greater than 0", weeks))
	}
	s.durationWeeks = weeks
	return nil
}
