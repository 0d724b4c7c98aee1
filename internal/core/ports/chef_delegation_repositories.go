package ports

import (
	"context"
	"time"

	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/reassignment"
	"mealflow/internal/core/domain/model/subscription"
)

type SubscriptionRepository interface {
	Add(ctx context.Context, aggregate *subscription.Subscription) error
	Update(ctx context.Context, aggregate *subscription.Subscription) error
	Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error)
}

type DelegationRepository interface {
	Add(ctx context.Context, aggregate *delegation.Delegation) error

	// Update replaces the timeline together with the delegation row.
	Update(ctx context.Context, aggregate *delegation.Delegation) error

	// GetBySubscription returns errs.ErrObjectNotFound when the subscription
	// has no delegation yet.
	GetBySubscription(ctx context.Context, subscriptionID kernel.UUID) (*delegation.Delegation, error)

	// CountByChefs returns the number of delegations per chef id.
	CountByChefs(ctx context.Context, chefIDs []kernel.UUID) (map[kernel.UUID]int, error)
}

type ReassignmentRepository interface {
	Add(ctx context.Context, aggregate *reassignment.Request) error
	Update(ctx context.Context, aggregate *reassignment.Request) error
	Get(ctx context.Context, id kernel.UUID) (*reassignment.Request, error)

	// ListStalePending returns pending low-priority requests created before
	// olderThan, oldest first.
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*reassignment.Request, error)
}
