package assignment

import (
	"errors"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
)

// Target is what an assignment delivers: either a one-off order or one meal
// slot of a subscription, never both.
type Target struct {
	orderID        *kernel.UUID
	subscriptionID *kernel.UUID
	slot           *kernel.MealSlot
}

func OrderTarget(orderID kernel.UUID) (Target, error) {
	if err := orderID.Validate(); err != nil {
		return Target{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	return Target{orderID: &orderID}, nil
}

func SubscriptionDayTarget(subscriptionID kernel.UUID, slot kernel.MealSlot) (Target, error) {
	if err := errors.Join(subscriptionID.Validate(), slot.Validate()); err != nil {
		return Target{}, errs.NewValueIsRequiredErrorWithCause("subscriptionDay", err)
	}
	return Target{subscriptionID: &subscriptionID, slot: &slot}, nil
}

func (t Target) Validate() error {
	switch {
	case t.orderID != nil && t.subscriptionID == nil && t.slot == nil:
		return nil
	case t.orderID == nil && t.subscriptionID != nil && t.slot != nil:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("target", errors.New("exactly one of order or subscription day is required"))
	}
}

func (t Target) IsOrder() bool {
	return t.orderID != nil
}

func (t Target) OrderID() *kernel.UUID {
	return t.orderID
}

func (t Target) SubscriptionID() *kernel.UUID {
	return t.subscriptionID
}

func (t Target) Slot() *kernel.MealSlot {
	return t.slot
}

func (t Target) String() string {
	if t.orderID != nil {
		return "order " + t.orderID.String()
	}
	if t.subscriptionID != nil && t.slot != nil {
		return "subscription " + t.subscriptionID.String() + " " + t.slot.String()
	}
	return "invalid target"
}
