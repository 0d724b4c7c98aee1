package commands

import (
	"context"
	"errors"
	"time"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// ConfirmDeliveryCommandHandler completes an assignment after checking the
// confirmation code. In the same unit of work it pays the driver, delivers the
// order through the transition matrix (or closes the subscription-day slot) and
// activates a subscription on its first delivery. The order must be
// Completed; anything else is reported as InvalidState.
type ConfirmDeliveryCommandHandler struct {
	uowFactory    UoWFactory
	earnings      services.EarningsPolicy
	publisher     EventPublisher
	clock         Clock
	retryAttempts int
	logger        zerolog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler that closes deliveries and pays drivers.
// Conflicting driver updates are replayed up to retryAttempts times.
func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	earnings services.EarningsPolicy,
	publisher EventPublisher,
	clock Clock,
	retryAttempts int,
	logger zerolog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory:    uowFactory,
		earnings:      earnings,
		publisher:     publisher,
		clock:         clock,
		retryAttempts: retryAttempts,
		logger:        logger.With().Str("component", "confirm_delivery").Logger(),
	}
}

// Handle checks the confirmation code, marks the order delivered and credits the driver.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		result *assignment.Assignment
		event  notifications.Event
	)
	err := withOptimisticRetry(ctx, h.retryAttempts, func(ctx context.Context) error {
		a, e, err := h.confirm(ctx, cmd)
		result, event = a, e
		return err
	})
	if err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, event)
	return result, nil
}

func (h ConfirmDeliveryCommandHandler) confirm(
	ctx context.Context,
	cmd ConfirmDeliveryCommand,
) (*assignment.Assignment, notifications.Event, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, notifications.Event{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignments := uow.AssignmentRepository()
	a, err := assignments.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, notifications.Event{}, err
	}

	earnings, err := h.earnings.Compute()
	if err != nil {
		return nil, notifications.Event{}, err
	}

	now := h.clock()
	if err = a.ConfirmDelivery(cmd.Code(), earnings, now); err != nil {
		if errors.Is(err, errs.ErrInvalidConfirmationCode) {
			h.logger.Warn().
				Str("assignment_id", a.ID().String()).
				Str("driver_id", a.DriverID().String()).
				Msg("confirmation code mismatch")
		}
		return nil, notifications.Event{}, err
	}

	o, err := orderOf(ctx, uow, a.Target())
	if err != nil {
		return nil, notifications.Event{}, err
	}
	if o.Status() != order.Completed {
		return nil, notifications.Event{}, errs.NewInvalidStateError("order", o.Status().String(), "confirm the delivery")
	}

	if err = h.payDriver(ctx, uow, a, earnings); err != nil {
		return nil, notifications.Event{}, err
	}

	if err = h.deliverOrder(ctx, uow, o, now); err != nil {
		return nil, notifications.Event{}, err
	}

	if err = assignments.Update(ctx, a); err != nil {
		return nil, notifications.Event{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, notifications.Event{}, err
	}

	return a, notifications.NewDeliveryCompletedEvent(a, o.CustomerID(), o.ChefID()), nil
}

func (h ConfirmDeliveryCommandHandler) payDriver(
	ctx context.Context,
	uow UoW,
	a *assignment.Assignment,
	earnings assignment.Earnings,
) error {
	drivers := uow.DriverRepository()

	d, err := drivers.Get(ctx, a.DriverID())
	if err != nil {
		return err
	}
	if err = d.RecordDelivery(earnings.Total); err != nil {
		return err
	}
	return drivers.Update(ctx, d)
}

// deliverOrder moves the order to Delivered and, for a subscription meal,
// closes the timeline slot and activates the subscription on its first
// delivery.
func (h ConfirmDeliveryCommandHandler) deliverOrder(ctx context.Context, uow UoW, o *order.Order, now time.Time) error {
	if err := o.TransitionTo(order.Delivered, "", now); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if !o.BelongsToSubscription() {
		return nil
	}
	if _, err := activateOnFirstDelivery(ctx, uow, *o.SubscriptionID(), now); err != nil {
		return err
	}
	_, err := markSlotDelivered(ctx, uow, *o.SubscriptionID(), *o.MealSlot(), now)
	return err
}
