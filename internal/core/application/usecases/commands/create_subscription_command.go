package commands

import (
	"errors"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrCreateSubscriptionCommandIsNotConstructed = errors.New(
	"CreateSubscriptionCommand must be created via NewCreateSubscriptionCommand constructor",
)

// CreateSubscriptionCommand registers a multi-week meal plan. It starts in
// PendingActivation and becomes active with its first delivery.
type CreateSubscriptionCommand struct {
	subscriptionID kernel.UUID
	customerID     kernel.UUID
	startDate      time.Time
	durationWeeks  int

	guard guard.ConstructorGuard
}

// NewCreateSubscriptionCommand creates a command that opens a subscription.
// Returns an error if any field fails validation.
func NewCreateSubscriptionCommand(
	subscriptionID, customerID kernel.UUID,
	startDate time.Time,
	durationWeeks int,
) (CreateSubscriptionCommand, error) {
	var dateErr, weeksErr error
	if startDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("startDate")
	}
	if durationWeeks <= 0 {
		weeksErr = errs.NewValueIsInvalidError("durationWeeks")
	}

	if err := errors.Join(subscriptionID.Validate(), customerID.Validate(), dateErr, weeksErr); err != nil {
		return CreateSubscriptionCommand{}, err
	}

	return CreateSubscriptionCommand{
		subscriptionID: subscriptionID,
		customerID:     customerID,
		startDate:      startDate,
		durationWeeks:  durationWeeks,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c CreateSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSubscriptionCommandIsNotConstructed)
}

// SubscriptionID returns the ID of the new subscription.
func (c CreateSubscriptionCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

// CustomerID returns the subscribing customer.
func (c CreateSubscriptionCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// StartDate returns the first day of the plan.
func (c CreateSubscriptionCommand) StartDate() time.Time {
	return c.startDate
}

// DurationWeeks returns the plan length in weeks.
func (c CreateSubscriptionCommand) DurationWeeks() int {
	return c.durationWeeks
}
