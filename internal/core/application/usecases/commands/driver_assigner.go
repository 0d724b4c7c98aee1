package commands

import (
	"context"
	"errors"
	"time"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/pkg/errs"
)

// DriverAssigner picks a driver for a delivery and records the assignment. It
// runs inside the caller's unit of work so a failed selection rolls back the
// operation that asked for it.
type DriverAssigner struct {
	dispatcher services.DriverDispatcher
	estimator  services.DeliveryEstimator
	codes      *services.ConfirmationCodeIssuer
}

// NewDriverAssigner creates a DriverAssigner from the dispatch, estimation and code services.
func NewDriverAssigner(
	dispatcher services.DriverDispatcher,
	estimator services.DeliveryEstimator,
	codes *services.ConfirmationCodeIssuer,
) *DriverAssigner {
	return &DriverAssigner{
		dispatcher: dispatcher,
		estimator:  estimator,
		codes:      codes,
	}
}

// delivery is everything needed to dispatch one target.
type delivery struct {
	target         assignment.Target
	customerID     kernel.UUID
	subscriptionID *kernel.UUID
	orderID        kernel.UUID
	pickup         kernel.Address
	dropoff        kernel.Address
}

// assign returns the target's active assignment, creating one when there is
// none. created reports whether a driver was selected in this call.
//
// The selected driver is written with a version compare-and-swap before the
// assignment is inserted. When a concurrent transaction took the same driver
// the update fails with errs.ErrConflict and the caller replays the whole
// transaction.
func (a *DriverAssigner) assign(
	ctx context.Context,
	uow UoW,
	d delivery,
	now time.Time,
) (result *assignment.Assignment, created bool, err error) {
	assignments := uow.AssignmentRepository()

	existing, err := assignments.GetActiveForTarget(ctx, d.target)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	drivers := uow.DriverRepository()
	eligible, err := drivers.ListEligible(ctx, d.dropoff.AreaKey())
	if err != nil {
		return nil, false, err
	}

	ids := make([]kernel.UUID, 0, len(eligible))
	for _, drv := range eligible {
		ids = append(ids, drv.ID())
	}
	loads, err := assignments.CountActiveByDrivers(ctx, ids)
	if err != nil {
		return nil, false, err
	}

	candidates := make([]services.Candidate, 0, len(eligible))
	for _, drv := range eligible {
		candidates = append(candidates, services.Candidate{Driver: drv, CurrentLoad: loads[drv.ID()]})
	}

	selected, err := a.dispatcher.Select(candidates)
	if err != nil {
		return nil, false, err
	}
	if err = selected.MarkAssigned(now); err != nil {
		return nil, false, err
	}
	if err = drivers.Update(ctx, selected); err != nil {
		return nil, false, err
	}

	estimate, err := a.estimator.Estimate(selected.Location(), d.pickup, d.dropoff, now)
	if err != nil {
		return nil, false, err
	}

	delivered, err := uow.OrderRepository().CountDelivered(ctx, d.customerID, d.subscriptionID, &d.orderID)
	if err != nil {
		return nil, false, err
	}
	code, err := a.codes.IssueFor(delivered > 0)
	if err != nil {
		return nil, false, err
	}

	result, err = assignment.NewAssignment(
		kernel.NewUUID(), selected.ID(), d.target, d.pickup, d.dropoff, estimate, code, now,
	)
	if err != nil {
		return nil, false, err
	}
	if err = assignments.Add(ctx, result); err != nil {
		return nil, false, err
	}
	return result, true, nil
}

// dispatchTarget is the single target under which an order is delivered. A
// subscription order is always dispatched as its subscription day, so the
// order and the day can never hold two active assignments at once.
func dispatchTarget(o *order.Order) (assignment.Target, error) {
	if o.BelongsToSubscription() {
		return assignment.SubscriptionDayTarget(*o.SubscriptionID(), *o.MealSlot())
	}
	return assignment.OrderTarget(o.ID())
}

// orderOf loads the order an assignment delivers.
func orderOf(ctx context.Context, uow UoW, target assignment.Target) (*order.Order, error) {
	if target.IsOrder() {
		return uow.OrderRepository().Get(ctx, *target.OrderID())
	}
	return uow.OrderRepository().GetBySubscriptionSlot(ctx, *target.SubscriptionID(), *target.Slot())
}

// deliveryForOrder dispatches an order from its chef's kitchen to the
// customer's address.
func deliveryForOrder(ctx context.Context, uow UoW, o *order.Order) (delivery, error) {
	if o.ChefID() == nil {
		return delivery{}, errs.NewInvalidStateError("order", o.Status().String(), "dispatch a driver without a chef")
	}

	target, err := dispatchTarget(o)
	if err != nil {
		return delivery{}, err
	}

	c, err := uow.ChefRepository().Get(ctx, *o.ChefID())
	if err != nil {
		return delivery{}, err
	}

	return delivery{
		target:         target,
		customerID:     o.CustomerID(),
		subscriptionID: o.SubscriptionID(),
		orderID:        o.ID(),
		pickup:         c.Kitchen(),
		dropoff:        o.Address(),
	}, nil
}

// deliveryForSubscriptionDay dispatches one meal slot of a subscription from
// the delegated chef to the address of the slot's order.
func deliveryForSubscriptionDay(
	ctx context.Context,
	uow UoW,
	subscriptionID kernel.UUID,
	slot kernel.MealSlot,
) (delivery, *delegation.Delegation, error) {
	target, err := assignment.SubscriptionDayTarget(subscriptionID, slot)
	if err != nil {
		return delivery{}, nil, err
	}

	del, err := uow.DelegationRepository().GetBySubscription(ctx, subscriptionID)
	if err != nil {
		return delivery{}, nil, err
	}
	if del.ChefID() == nil {
		return delivery{}, nil, errs.NewInvalidStateError("delegation", del.Status().String(), "dispatch a driver")
	}

	o, err := uow.OrderRepository().GetBySubscriptionSlot(ctx, subscriptionID, slot)
	if err != nil {
		return delivery{}, nil, err
	}
	if !isDispatchable(o.Status()) {
		return delivery{}, nil, errs.NewInvalidStateError("order", o.Status().String(), "dispatch a driver")
	}

	c, err := uow.ChefRepository().Get(ctx, *del.ChefID())
	if err != nil {
		return delivery{}, nil, err
	}

	return delivery{
		target:         target,
		customerID:     o.CustomerID(),
		subscriptionID: &subscriptionID,
		orderID:        o.ID(),
		pickup:         c.Kitchen(),
		dropoff:        o.Address(),
	}, del, nil
}

// scheduleDispatchedMeal records a new subscription-day assignment on the
// delegation timeline. One-off orders and subscriptions without a delegation
// are left alone.
func scheduleDispatchedMeal(ctx context.Context, uow UoW, a *assignment.Assignment, now time.Time) error {
	if a.Target().IsOrder() {
		return nil
	}

	del, err := uow.DelegationRepository().GetBySubscription(ctx, *a.Target().SubscriptionID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return scheduleMeal(ctx, uow, del, a, now)
}

func scheduleMeal(ctx context.Context, uow UoW, del *delegation.Delegation, a *assignment.Assignment, now time.Time) error {
	if err := del.ScheduleMeal(*a.Target().Slot(), now); err != nil {
		return err
	}
	if err := del.AssignDriver(a.DriverID()); err != nil {
		return err
	}
	return uow.DelegationRepository().Update(ctx, del)
}
