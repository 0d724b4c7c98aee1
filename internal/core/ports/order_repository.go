package ports

import (
	"context"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
)

type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order if its stored version still matches; otherwise it
	// fails with errs.ErrConflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListActiveBySubscription returns the non-terminal orders of a subscription.
	ListActiveBySubscription(ctx context.Context, subscriptionID kernel.UUID) ([]*order.Order, error)

	// GetBySubscriptionSlot finds the order delivering one meal slot of a
	// subscription.
	GetBySubscriptionSlot(ctx context.Context, subscriptionID kernel.UUID, slot kernel.MealSlot) (*order.Order, error)

	// CountDelivered counts the customer's delivered orders, optionally
	// restricted to one subscription, excluding the order being processed.
	CountDelivered(ctx context.Context, customerID kernel.UUID, subscriptionID *kernel.UUID, excludeOrderID *kernel.UUID) (int64, error)
}
