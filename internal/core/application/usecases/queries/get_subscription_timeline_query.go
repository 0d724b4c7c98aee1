package queries

import (
	"errors"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrGetSubscriptionTimelineQueryIsNotConstructed = errors.New(
	"GetSubscriptionTimelineQuery must be created via NewGetSubscriptionTimelineQuery constructor",
)

type GetSubscriptionTimelineQuery struct {
	subscriptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSubscriptionTimelineQuery creates a query for one subscription's timeline.
// Returns an error if the ID is empty.
func NewGetSubscriptionTimelineQuery(subscriptionID kernel.UUID) (GetSubscriptionTimelineQuery, error) {
	if err := subscriptionID.Validate(); err != nil {
		return GetSubscriptionTimelineQuery{}, errs.NewValueIsRequiredErrorWithCause("subscriptionID", err)
	}
	return GetSubscriptionTimelineQuery{subscriptionID: subscriptionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built through its constructor.
func (q GetSubscriptionTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetSubscriptionTimelineQueryIsNotConstructed)
}

// SubscriptionID returns the subscription to describe.
func (q GetSubscriptionTimelineQuery) SubscriptionID() kernel.UUID {
	return q.subscriptionID
}

type TimelineEntry struct {
	Date      string    `json:"date"`
	MealTime  string    `json:"mealTime"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetSubscriptionTimelineQueryResponse carries the delegation status derived
// at read time.
type GetSubscriptionTimelineQueryResponse struct {
	SubscriptionID     string          `json:"subscriptionId"`
	SubscriptionStatus string          `json:"subscriptionStatus"`
	ChefID             *string         `json:"chefId,omitempty"`
	DriverID           *string         `json:"driverId,omitempty"`
	Status             string          `json:"status"`
	Entries            []TimelineEntry `json:"entries"`
}
