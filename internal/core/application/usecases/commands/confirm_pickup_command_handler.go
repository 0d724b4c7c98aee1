package commands

import (
	"context"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/pkg/errs"
)

// ConfirmPickupCommandHandler records that the driver collected the meal and
// tells the customer it is on the way. The meal can only be collected once its
// order is Completed, so a picked-up assignment can always be delivered.
type ConfirmPickupCommandHandler struct {
	uowFactory UoWFactory
	publisher  EventPublisher
	clock      Clock
}

// NewConfirmPickupCommandHandler creates a handler that records driver pickups.
func NewConfirmPickupCommandHandler(uowFactory UoWFactory, publisher EventPublisher, clock Clock) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle moves the assignment to picked up once the meal is ready.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) (*assignment.Assignment, error) {
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

	assignments := uow.AssignmentRepository()
	a, err := assignments.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	o, err := orderOf(ctx, uow, a.Target())
	if err != nil {
		return nil, err
	}
	if o.Status() != order.Completed {
		return nil, errs.NewInvalidStateError("order", o.Status().String(), "hand the meal to the driver")
	}

	if err = a.ConfirmPickup(h.clock()); err != nil {
		return nil, err
	}

	if err = assignments.Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, notifications.NewPickupConfirmedEvent(a, o.CustomerID()))
	return a, nil
}
