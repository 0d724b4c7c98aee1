package commands

import (
	"context"

	"mealflow/internal/core/domain/model/subscription"
)

type CreateSubscriptionCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateSubscriptionCommandHandler creates a handler that opens subscriptions.
func NewCreateSubscriptionCommandHandler(uowFactory UoWFactory) CreateSubscriptionCommandHandler {
	return CreateSubscriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a new pending subscription.
func (h CreateSubscriptionCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSubscriptionCommand,
) (*subscription.Subscription, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	sub, err := subscription.NewSubscription(cmd.SubscriptionID(), cmd.CustomerID(), cmd.StartDate(), cmd.DurationWeeks())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SubscriptionRepository().Add(ctx, sub); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return sub, nil
}
