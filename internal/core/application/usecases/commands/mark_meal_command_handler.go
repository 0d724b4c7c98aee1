package commands

import (
	"context"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/domain/model/delegation"
)

// MarkMealCommandHandler updates the subscription timeline. Entries only move
// forward; delivering a slot also activates a subscription still waiting for
// its first delivery.
type MarkMealCommandHandler struct {
	uowFactory UoWFactory
	publisher  EventPublisher
	clock      Clock
}

// NewMarkMealCommandHandler creates a handler that records meal progress on a delegation.
func NewMarkMealCommandHandler(uowFactory UoWFactory, publisher EventPublisher, clock Clock) MarkMealCommandHandler {
	return MarkMealCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle moves the meal slot to the command's stage. A ready meal notifies the customer.
func (h MarkMealCommandHandler) Handle(ctx context.Context, cmd MarkMealCommand) (*delegation.Delegation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	delegations := uow.DelegationRepository()
	del, err := delegations.GetBySubscription(ctx, cmd.SubscriptionID())
	if err != nil {
		return nil, err
	}

	now := h.clock()
	if cmd.Stage() == MealStageDelivered {
		err = del.MarkMealDelivered(cmd.Slot(), now)
	} else {
		err = del.MarkMealReady(cmd.Slot(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = delegations.Update(ctx, del); err != nil {
		return nil, err
	}

	var event *notifications.Event
	if cmd.Stage() == MealStageDelivered {
		if _, err = activateOnFirstDelivery(ctx, uow, cmd.SubscriptionID(), now); err != nil {
			return nil, err
		}
	} else {
		sub, err := uow.SubscriptionRepository().Get(ctx, cmd.SubscriptionID())
		if err != nil {
			return nil, err
		}
		customerID := sub.CustomerID()
		e := notifications.NewMealReadyEvent(cmd.SubscriptionID(), cmd.Slot(), &customerID)
		event = &e
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if event != nil {
		h.publisher.Publish(ctx, *event)
	}
	return del, nil
}
