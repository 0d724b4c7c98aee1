package commands

import (
	"context"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/pkg/errs"
)

// CreateDriverAssignmentCommandHandler dispatches a driver outside of an order
// transition: re-dispatching an order after its assignment was cancelled, or
// scheduling one day of a subscription. It is idempotent while the target has
// an active assignment.
type CreateDriverAssignmentCommandHandler struct {
	uowFactory    UoWFactory
	assigner      *DriverAssigner
	clock         Clock
	retryAttempts int
}

// NewCreateDriverAssignmentCommandHandler creates a handler that dispatches drivers.
// Lost races for a driver's capacity are replayed up to retryAttempts times.
func NewCreateDriverAssignmentCommandHandler(
	uowFactory UoWFactory,
	assigner *DriverAssigner,
	clock Clock,
	retryAttempts int,
) CreateDriverAssignmentCommandHandler {
	return CreateDriverAssignmentCommandHandler{
		uowFactory:    uowFactory,
		assigner:      assigner,
		clock:         clock,
		retryAttempts: retryAttempts,
	}
}

// Handle returns the active assignment for the target, dispatching a driver if none exists.
func (h CreateDriverAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDriverAssignmentCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *assignment.Assignment
	err := withOptimisticRetry(ctx, h.retryAttempts, func(ctx context.Context) error {
		a, err := h.create(ctx, cmd.Target())
		result = a
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h CreateDriverAssignmentCommandHandler) create(ctx context.Context, target assignment.Target) (*assignment.Assignment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		result *assignment.Assignment
		err    error
	)
	if target.IsOrder() {
		result, err = h.forOrder(ctx, uow, target)
	} else {
		result, err = h.forSubscriptionDay(ctx, uow, target)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

func (h CreateDriverAssignmentCommandHandler) forOrder(
	ctx context.Context,
	uow UoW,
	target assignment.Target,
) (*assignment.Assignment, error) {
	o, err := uow.OrderRepository().Get(ctx, *target.OrderID())
	if err != nil {
		return nil, err
	}
	if !isDispatchable(o.Status()) {
		return nil, errs.NewInvalidStateError("order", o.Status().String(), "dispatch a driver")
	}

	d, err := deliveryForOrder(ctx, uow, o)
	if err != nil {
		return nil, err
	}

	now := h.clock()
	a, created, err := h.assigner.assign(ctx, uow, d, now)
	if err != nil {
		return nil, err
	}
	if created {
		if err = scheduleDispatchedMeal(ctx, uow, a, now); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (h CreateDriverAssignmentCommandHandler) forSubscriptionDay(
	ctx context.Context,
	uow UoW,
	target assignment.Target,
) (*assignment.Assignment, error) {
	d, del, err := deliveryForSubscriptionDay(ctx, uow, *target.SubscriptionID(), *target.Slot())
	if err != nil {
		return nil, err
	}

	now := h.clock()
	a, created, err := h.assigner.assign(ctx, uow, d, now)
	if err != nil {
		return nil, err
	}
	if !created {
		return a, nil
	}

	if err = scheduleMeal(ctx, uow, del, a, now); err != nil {
		return nil, err
	}
	return a, nil
}

// isDispatchable reports whether an order in status s may get a driver.
func isDispatchable(s order.Status) bool {
	return s == order.Confirmed || s == order.InProgress || s == order.Completed
}
