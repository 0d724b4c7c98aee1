package commands

import (
	"context"
	"errors"
	"time"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies an order transition together with its
// mandatory side effects in one unit of work:
//   - Confirmed dispatches a driver; without capacity the transition fails
//   - Cancelled cancels the order's active driver assignment
//   - Delivered activates a waiting subscription and closes the timeline slot
//
// The status-change notification is published after the commit.
type TransitionOrderCommandHandler struct {
	uowFactory    UoWFactory
	assigner      *DriverAssigner
	publisher     EventPublisher
	clock         Clock
	retryAttempts int
}

// NewTransitionOrderCommandHandler creates a handler that drives the order lifecycle.
// Conflicting updates are replayed up to retryAttempts times.
func NewTransitionOrderCommandHandler(
	uowFactory UoWFactory,
	assigner *DriverAssigner,
	publisher EventPublisher,
	clock Clock,
	retryAttempts int,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory:    uowFactory,
		assigner:      assigner,
		publisher:     publisher,
		clock:         clock,
		retryAttempts: retryAttempts,
	}
}

// Handle applies the transition and its side effects, then publishes the status change.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *order.Order
	err := withOptimisticRetry(ctx, h.retryAttempts, func(ctx context.Context) error {
		o, err := h.transition(ctx, cmd)
		result = o
		return err
	})
	if err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, notifications.NewOrderStatusChangedEvent(result))
	return result, nil
}

func (h TransitionOrderCommandHandler) transition(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock()
	if err = o.TransitionTo(cmd.Target(), cmd.Reason(), now); err != nil {
		return nil, err
	}

	if err = h.applySideEffects(ctx, uow, o, now); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h TransitionOrderCommandHandler) applySideEffects(ctx context.Context, uow UoW, o *order.Order, now time.Time) error {
	target, err := dispatchTarget(o)
	if err != nil {
		return err
	}

	switch o.Status() { //nolint:exhaustive // other statuses have no side effects
	case order.Confirmed:
		d, err := deliveryForOrder(ctx, uow, o)
		if err != nil {
			return err
		}
		a, created, err := h.assigner.assign(ctx, uow, d, now)
		if err != nil || !created {
			return err
		}
		return scheduleDispatchedMeal(ctx, uow, a, now)

	case order.Cancelled:
		return cancelActiveAssignment(ctx, uow, target, o.CancellationReason(), now)

	case order.Delivered:
		// An order with a driver on the way is delivered by confirming the
		// assignment, which checks the confirmation code.
		active, err := uow.AssignmentRepository().GetActiveForTarget(ctx, target)
		if err == nil {
			return errs.NewInvalidStateError("assignment", active.Status().String(), "deliver the order without confirmation")
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		if !o.BelongsToSubscription() {
			return nil
		}
		if _, err = activateOnFirstDelivery(ctx, uow, *o.SubscriptionID(), now); err != nil {
			return err
		}
		_, err = markSlotDelivered(ctx, uow, *o.SubscriptionID(), *o.MealSlot(), now)
		return err
	}

	return nil
}
