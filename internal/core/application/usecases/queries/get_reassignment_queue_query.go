package queries

import (
	"errors"
	"time"

	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

const MaxReassignmentQueueLimit = 200

var ErrGetReassignmentQueueQueryIsNotConstructed = errors.New(
	"GetReassignmentQueueQuery must be created via NewGetReassignmentQueueQuery constructor",
)

// GetReassignmentQueueQuery lists pending reassignment requests for the admin
// queue, most urgent first.
type GetReassignmentQueueQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetReassignmentQueueQuery creates a query for at most limit pending requests.
func NewGetReassignmentQueueQuery(limit int) (GetReassignmentQueueQuery, error) {
	if limit < 1 || limit > MaxReassignmentQueueLimit {
		return GetReassignmentQueueQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxReassignmentQueueLimit)
	}
	return GetReassignmentQueueQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built through its constructor.
func (q GetReassignmentQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetReassignmentQueueQueryIsNotConstructed)
}

// Limit returns the maximum number of requests to return.
func (q GetReassignmentQueueQuery) Limit() int {
	return q.limit
}

type GetReassignmentQueueQueryResponse struct {
	ID              string    `json:"id"`
	SubscriptionID  string    `json:"subscriptionId"`
	CurrentChefID   *string   `json:"currentChefId,omitempty"`
	RequestedChefID *string   `json:"requestedChefId,omitempty"`
	Reason          string    `json:"reason"`
	Priority        string    `json:"priority"`
	CreatedAt       time.Time `json:"createdAt"`
}
