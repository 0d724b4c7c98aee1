package commands

import (
	"context"
	"errors"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/pkg/errs"
)

// CreateOrderCommandHandler persists a Pending order. Subscription orders
// without an explicit chef inherit the chef of the subscription's delegation.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler that places orders.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a new pending order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	now := h.clock()

	var (
		o   *order.Order
		err error
	)
	chefID := cmd.ChefID()
	if cmd.SubscriptionID() == nil {
		o, err = order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Address(), now)
	} else {
		if chefID, err = h.subscriptionChef(ctx, uow, *cmd.SubscriptionID(), chefID); err != nil {
			return nil, err
		}
		o, err = order.NewSubscriptionOrder(
			cmd.OrderID(), cmd.CustomerID(), *cmd.SubscriptionID(), *cmd.Slot(), cmd.Address(), now,
		)
	}
	if err != nil {
		return nil, err
	}

	if chefID != nil {
		if _, err = uow.ChefRepository().Get(ctx, *chefID); err != nil {
			return nil, err
		}
		if err = o.AssignChef(*chefID); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// subscriptionChef checks the subscription exists and falls back to its
// delegated chef when none was given.
func (h CreateOrderCommandHandler) subscriptionChef(
	ctx context.Context,
	uow UoW,
	subscriptionID kernel.UUID,
	chefID *kernel.UUID,
) (*kernel.UUID, error) {
	if _, err := uow.SubscriptionRepository().Get(ctx, subscriptionID); err != nil {
		return nil, err
	}
	if chefID != nil {
		return chefID, nil
	}

	del, err := uow.DelegationRepository().GetBySubscription(ctx, subscriptionID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // no delegated chef
	}
	if err != nil {
		return nil, err
	}
	return del.ChefID(), nil
}
