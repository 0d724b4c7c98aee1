package order

import (
	"errors"
	"fmt"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

const entityName = "order"

// ErrOrderIsNotConstructed is returned by Validate for orders built outside
// NewOrder, NewSubscriptionOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a single customer order. One-off orders come
// from checkout; subscription orders additionally carry the subscription and
// the meal slot they deliver.
//
// Invariants:
//   - status only changes through TransitionTo and the transition matrix
//   - deliveredAt is set iff status is Delivered
//   - cancelledAt is set iff status is Cancelled
//   - subscriptionID and mealSlot are either both set or both absent
type Order struct {
	kernel.Versioned

	id             kernel.UUID
	customerID     kernel.UUID
	subscriptionID *kernel.UUID
	mealSlot       *kernel.MealSlot
	chefID         *kernel.UUID
	address        kernel.Address

	status        Status
	paymentStatus PaymentStatus

	createdAt    time.Time
	confirmedAt  *time.Time
	inProgressAt *time.Time
	completedAt  *time.Time
	deliveredAt  *time.Time
	cancelledAt  *time.Time

	cancellationReason string

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order awaiting payment.
func NewOrder(id, customerID kernel.UUID, address kernel.Address, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		createdAt:     now.UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewSubscriptionOrder creates a Pending order delivering one meal slot of a
// subscription.
func NewSubscriptionOrder(
	id, customerID, subscriptionID kernel.UUID,
	slot kernel.MealSlot,
	address kernel.Address,
	now time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, address, now)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(subscriptionID.Validate(), slot.Validate()); err != nil {
		return nil, err
	}

	o.subscriptionID = &subscriptionID
	o.mealSlot = &slot
	return o, nil
}

// Snapshot is the flat persisted form of an Order.
type Snapshot struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	SubscriptionID     *kernel.UUID
	MealSlot           *kernel.MealSlot
	ChefID             *kernel.UUID
	Address            kernel.Address
	Status             Status
	PaymentStatus      PaymentStatus
	CreatedAt          time.Time
	ConfirmedAt        *time.Time
	InProgressAt       *time.Time
	CompletedAt        *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	Version            int
}

// RestoreOrder rebuilds an order from storage, re-checking the invariants a
// direct database edit could have broken.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		Versioned:          kernel.RestoreVersioned(s.Version),
		subscriptionID:     s.SubscriptionID,
		mealSlot:           s.MealSlot,
		chefID:             s.ChefID,
		createdAt:          s.CreatedAt,
		confirmedAt:        s.ConfirmedAt,
		inProgressAt:       s.InProgressAt,
		completedAt:        s.CompletedAt,
		deliveredAt:        s.DeliveredAt,
		cancelledAt:        s.CancelledAt,
		cancellationReason: s.CancellationReason,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setAddress(s.Address),
		o.setStatus(s.Status),
		o.setPaymentStatus(s.PaymentStatus),
	); err != nil {
		return nil, err
	}

	if (s.SubscriptionID == nil) != (s.MealSlot == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("subscription",
			errors.New("subscription id and meal slot must be set together"))
	}
	if (s.DeliveredAt != nil) != (s.Status == Delivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			fmt.Errorf("deliveredAt does not match status %s", s.Status))
	}
	if (s.CancelledAt != nil) != (s.Status == Cancelled) {
		return nil, errs.NewValueIsInvalidErrorWithCause("cancelledAt",
			fmt.Errorf("cancelledAt does not match status %s", s.Status))
	}

	return o, nil
}

func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                 o.id,
		CustomerID:         o.customerID,
		SubscriptionID:     o.subscriptionID,
		MealSlot:           o.mealSlot,
		ChefID:             o.chefID,
		Address:            o.address,
		Status:             o.status,
		PaymentStatus:      o.paymentStatus,
		CreatedAt:          o.createdAt,
		ConfirmedAt:        o.confirmedAt,
		InProgressAt:       o.inProgressAt,
		CompletedAt:        o.completedAt,
		DeliveredAt:        o.deliveredAt,
		CancelledAt:        o.cancelledAt,
		CancellationReason: o.cancellationReason,
		Version:            o.Version(),
	}
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) SubscriptionID() *kernel.UUID {
	return o.subscriptionID
}

func (o *Order) MealSlot() *kernel.MealSlot {
	return o.mealSlot
}

func (o *Order) ChefID() *kernel.UUID {
	return o.chefID
}

func (o *Order) Address() kernel.Address {
	return o.address
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

func (o *Order) InProgressAt() *time.Time {
	return o.inProgressAt
}

func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

func (o *Order) BelongsToSubscription() bool {
	return o.subscriptionID != nil
}

// TransitionTo moves the order to target if the matrix allows it and stamps
// the matching timestamp. On failure the order is left untouched and the
// error unwraps to errs.ErrInvalidTransition.
func (o *Order) TransitionTo(target Status, reason string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return errs.NewInvalidTransitionErrorWithCause(entityName, o.status.String(), target.String(), err)
	}
	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(entityName, o.status.String(), target.String())
	}

	at := now.UTC()
	switch target { //nolint:exhaustive // validated above
	case Confirmed:
		o.confirmedAt = &at
	case InProgress:
		o.inProgressAt = &at
	case Completed:
		o.completedAt = &at
	case Delivered:
		o.deliveredAt = &at
	case Cancelled:
		o.cancelledAt = &at
		o.cancellationReason = reason
	}

	o.status = target
	return nil
}

// AssignChef records the chef preparing the order. Terminal orders keep the
// chef they were fulfilled by.
func (o *Order) AssignChef(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError(entityName, o.status.String(), "change chef")
	}

	o.chefID = &chefID
	return nil
}

// RecordPayment stores the payment state reported by the gateway.
func (o *Order) RecordPayment(status PaymentStatus) error {
	return o.setPaymentStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}
