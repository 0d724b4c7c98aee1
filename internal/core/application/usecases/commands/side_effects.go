package commands

import (
	"context"
	"errors"
	"time"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/subscription"
	"mealflow/internal/pkg/errs"
)

// activateOnFirstDelivery activates a subscription that is still waiting for
// its first delivery. Active and cancelled subscriptions are left alone.
func activateOnFirstDelivery(
	ctx context.Context,
	uow UoW,
	subscriptionID kernel.UUID,
	now time.Time,
) (*subscription.Subscription, error) {
	repo := uow.SubscriptionRepository()

	sub, err := repo.Get(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.Status() != subscription.PendingActivation {
		return sub, nil
	}

	changed, err := sub.Activate(now)
	if err != nil {
		return nil, err
	}
	if changed {
		if err = repo.Update(ctx, sub); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// markSlotDelivered advances the slot's timeline entry when the subscription
// has a delegation. It returns nil without error when there is none.
func markSlotDelivered(
	ctx context.Context,
	uow UoW,
	subscriptionID kernel.UUID,
	slot kernel.MealSlot,
	now time.Time,
) (*delegation.Delegation, error) {
	repo := uow.DelegationRepository()

	del, err := repo.GetBySubscription(ctx, subscriptionID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // no delegation yet
	}
	if err != nil {
		return nil, err
	}

	if err = del.MarkMealDelivered(slot, now); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, del); err != nil {
		return nil, err
	}
	return del, nil
}

// cancelActiveAssignment cancels the target's non-terminal assignment, if any.
func cancelActiveAssignment(
	ctx context.Context,
	uow UoW,
	target assignment.Target,
	reason string,
	now time.Time,
) error {
	repo := uow.AssignmentRepository()

	active, err := repo.GetActiveForTarget(ctx, target)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = active.Cancel(reason, now); err != nil {
		return err
	}
	return repo.Update(ctx, active)
}
