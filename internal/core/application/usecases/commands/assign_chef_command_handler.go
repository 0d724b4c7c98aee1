package commands

import (
	"context"
	"errors"
	"time"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/subscription"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/pkg/errs"
)

// AssignmentResult reports a chef delegation.
type AssignmentResult struct {
	SubscriptionID kernel.UUID
	ChefID         kernel.UUID
	UpdatedOrders  int
}

// AssignChefCommandHandler delegates a subscription to a chef with room for
// it. A delegation that lost a race for the chef's last slot is replayed.
type AssignChefCommandHandler struct {
	uowFactory    UoWFactory
	capacity      services.CapacityTracker
	publisher     EventPublisher
	clock         Clock
	retryAttempts int
}

// NewAssignChefCommandHandler creates a handler that retries lost capacity
// races up to retryAttempts times.
func NewAssignChefCommandHandler(
	uowFactory UoWFactory,
	capacity services.CapacityTracker,
	publisher EventPublisher,
	clock Clock,
	retryAttempts int,
) AssignChefCommandHandler {
	return AssignChefCommandHandler{
		uowFactory:    uowFactory,
		capacity:      capacity,
		publisher:     publisher,
		clock:         clock,
		retryAttempts: retryAttempts,
	}
}

// Handle delegates the subscription and notifies the customer and the chef.
func (h AssignChefCommandHandler) Handle(ctx context.Context, cmd AssignChefCommand) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	var (
		result AssignmentResult
		sub    *subscription.Subscription
	)
	err := withOptimisticRetry(ctx, h.retryAttempts, func(ctx context.Context) error {
		var err error
		result, sub, err = h.assign(ctx, cmd)
		return err
	})
	if err != nil {
		return AssignmentResult{}, err
	}

	customerID := sub.CustomerID()
	h.publisher.Publish(ctx, notifications.NewChefAssignedEvent(
		result.SubscriptionID, result.ChefID, &customerID, result.UpdatedOrders,
	))
	return result, nil
}

func (h AssignChefCommandHandler) assign(
	ctx context.Context,
	cmd AssignChefCommand,
) (AssignmentResult, *subscription.Subscription, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result, sub, err := assignChef(ctx, uow, h.capacity, cmd.ChefID(), cmd.SubscriptionID(), h.clock())
	if err != nil {
		return AssignmentResult{}, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, nil, err
	}
	return result, sub, nil
}

// assignChef delegates the subscription to chefID and moves every
// non-terminal order of the subscription to that chef. Re-assigning the chef
// already in charge does not count against its capacity twice.
//
// The chef row is written with a version compare-and-swap after the capacity
// check, so two transactions filling the chef's last slot cannot both commit:
// the loser gets errs.ErrConflict and must be replayed.
func assignChef(
	ctx context.Context,
	uow UoW,
	capacity services.CapacityTracker,
	chefID, subscriptionID kernel.UUID,
	now time.Time,
) (AssignmentResult, *subscription.Subscription, error) {
	sub, err := uow.SubscriptionRepository().Get(ctx, subscriptionID)
	if err != nil {
		return AssignmentResult{}, nil, err
	}

	c, err := uow.ChefRepository().Get(ctx, chefID)
	if err != nil {
		return AssignmentResult{}, nil, err
	}

	delegations := uow.DelegationRepository()
	del, err := delegations.GetBySubscription(ctx, subscriptionID)
	isNew := errors.Is(err, errs.ErrObjectNotFound)
	switch {
	case isNew:
		if del, err = delegation.NewDelegation(kernel.NewUUID(), subscriptionID); err != nil {
			return AssignmentResult{}, nil, err
		}
	case err != nil:
		return AssignmentResult{}, nil, err
	}

	loads, err := delegations.CountByChefs(ctx, []kernel.UUID{chefID})
	if err != nil {
		return AssignmentResult{}, nil, err
	}
	load := loads[chefID]
	if current := del.ChefID(); current != nil && current.IsEqual(chefID) {
		load--
	}
	if err = capacity.CheckChef(c, load); err != nil {
		return AssignmentResult{}, nil, err
	}
	if err = uow.ChefRepository().Update(ctx, c); err != nil {
		return AssignmentResult{}, nil, err
	}

	if err = del.AssignChef(chefID, now); err != nil {
		return AssignmentResult{}, nil, err
	}
	if isNew {
		err = delegations.Add(ctx, del)
	} else {
		err = delegations.Update(ctx, del)
	}
	if err != nil {
		return AssignmentResult{}, nil, err
	}

	orders := uow.OrderRepository()
	active, err := orders.ListActiveBySubscription(ctx, subscriptionID)
	if err != nil {
		return AssignmentResult{}, nil, err
	}
	for _, o := range active {
		if err = o.AssignChef(chefID); err != nil {
			return AssignmentResult{}, nil, err
		}
		if err = orders.Update(ctx, o); err != nil {
			return AssignmentResult{}, nil, err
		}
	}

	return AssignmentResult{
		SubscriptionID: subscriptionID,
		ChefID:         chefID,
		UpdatedOrders:  len(active),
	}, sub, nil
}
