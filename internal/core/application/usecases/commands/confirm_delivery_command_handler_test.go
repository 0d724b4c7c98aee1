package commands_test

import (
	"testing"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/core/domain/model/subscription"
	"mealflow/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConfirmDeliveryHandler(
	t *testing.T,
	uow *MockUoW,
	publisher *MockEventPublisher,
) commands.ConfirmDeliveryCommandHandler {
	t.Helper()
	return commands.NewConfirmDeliveryCommandHandler(
		newMockUoWFactory(uow), newTestEarningsPolicy(t), publisher, fixedClock, commands.DefaultRetryAttempts, zerolog.Nop(),
	)
}

func pickedUp(t *testing.T, a *assignment.Assignment) *assignment.Assignment {
	t.Helper()
	require.NoError(t, a.ConfirmPickup(fixedNow))
	return a
}

func TestConfirmDeliveryCommandHandler_OrderWithCode(t *testing.T) {
	ctx := t.Context()
	chefID := kernel.NewUUID()
	o := newTestOrder(t, order.Completed, &chefID)
	target, err := assignment.OrderTarget(o.ID())
	require.NoError(t, err)
	d := newTestDriver(t, 3)
	a := pickedUp(t, newTestAssignment(t, target, d.ID(), "K7P2QX"))

	uow := newMockUoW(ctx)
	uow.assignments.On("Get", ctx, a.ID()).Return(a, nil).Once()
	uow.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.drivers.On("Update", ctx, d).Return(nil).Once()
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.orders.On("Update", ctx, o).Return(nil).Once()
	uow.assignments.On("Update", ctx, a).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(e notifications.Event) bool {
		return e.Kind == notifications.DeliveryCompleted &&
			e.CustomerID != nil && e.CustomerID.IsEqual(o.CustomerID()) &&
			e.ChefID != nil && e.ChefID.IsEqual(chefID)
	})).Return().Once()

	cmd, err := commands.NewConfirmDeliveryCommand(a.ID(), " k7p2qx ")
	require.NoError(t, err)

	result, err := newConfirmDeliveryHandler(t, uow, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, assignment.Delivered, result.Status())
	require.NotNil(t, result.Earnings())
	assert.True(t, decimal.NewFromInt(500).Equal(result.Earnings().Total))
	assert.True(t, decimal.NewFromInt(500).Equal(d.DailyEarnings()))
	assert.True(t, decimal.NewFromInt(500).Equal(d.TotalEarnings()))
	assert.Equal(t, 1, d.CompletedDeliveries())
	assert.Equal(t, order.Delivered, o.Status())
	uow.assertRepositories(t)
	publisher.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_WrongCode(t *testing.T) {
	ctx := t.Context()
	target, err := assignment.OrderTarget(kernel.NewUUID())
	require.NoError(t, err)
	a := pickedUp(t, newTestAssignment(t, target, kernel.NewUUID(), "K7P2QX"))

	uow := newMockUoW(ctx)
	uow.assignments.On("Get", ctx, a.ID()).Return(a, nil)

	publisher := new(MockEventPublisher)
	handler := newConfirmDeliveryHandler(t, uow, publisher)

	for _, candidate := range []string{"", "K7P2QY", "K7P2QXX"} {
		cmd, err := commands.NewConfirmDeliveryCommand(a.ID(), candidate)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidConfirmationCode, candidate)
		assert.Equal(t, assignment.PickedUp, a.Status())
	}

	uow.drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.assignments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestConfirmDeliveryCommandHandler_RequiresPickup(t *testing.T) {
	ctx := t.Context()
	target, err := assignment.OrderTarget(kernel.NewUUID())
	require.NoError(t, err)
	a := newTestAssignment(t, target, kernel.NewUUID(), "")

	uow := newMockUoW(ctx)
	uow.assignments.On("Get", ctx, a.ID()).Return(a, nil).Once()

	cmd, err := commands.NewConfirmDeliveryCommand(a.ID(), "")
	require.NoError(t, err)

	_, err = newConfirmDeliveryHandler(t, uow, new(MockEventPublisher)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, assignment.Assigned, a.Status())
}

func TestConfirmDeliveryCommandHandler_OrderNotCompleted(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, order.InProgress, nil)
	target, err := assignment.OrderTarget(o.ID())
	require.NoError(t, err)
	d := newTestDriver(t, 3)
	a := pickedUp(t, newTestAssignment(t, target, d.ID(), ""))

	uow := newMockUoW(ctx)
	uow.assignments.On("Get", ctx, a.ID()).Return(a, nil).Once()
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, err := commands.NewConfirmDeliveryCommand(a.ID(), "")
	require.NoError(t, err)

	_, err = newConfirmDeliveryHandler(t, uow, new(MockEventPublisher)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.InProgress, o.Status())
	assert.True(t, d.DailyEarnings().IsZero())
	uow.drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmDeliveryCommandHandler_SubscriptionDay(t *testing.T) {
	ctx := t.Context()
	sub := newTestSubscription(t)
	slot := testSlot(t, "2025-03-04", "breakfast")
	target, err := assignment.SubscriptionDayTarget(sub.ID(), slot)
	require.NoError(t, err)

	chefID := kernel.NewUUID()
	del, err := delegation.NewDelegation(kernel.NewUUID(), sub.ID())
	require.NoError(t, err)
	require.NoError(t, del.AssignChef(chefID, fixedNow))
	require.NoError(t, del.ScheduleMeal(slot, fixedNow))

	o := newTestSubscriptionOrder(t, order.Completed, sub.ID(), slot, &chefID)
	d := newTestDriver(t, 3)
	a := pickedUp(t, newTestAssignment(t, target, d.ID(), ""))

	uow := newMockUoW(ctx)
	uow.assignments.On("Get", ctx, a.ID()).Return(a, nil).Once()
	uow.orders.On("GetBySubscriptionSlot", ctx, sub.ID(), slot).Return(o, nil).Once()
	uow.orders.On("Update", ctx, o).Return(nil).Once()
	uow.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.drivers.On("Update", ctx, d).Return(nil).Once()
	uow.delegations.On("GetBySubscription", ctx, sub.ID()).Return(del, nil).Once()
	uow.delegations.On("Update", ctx, del).Return(nil).Once()
	uow.subscriptions.On("Get", ctx, sub.ID()).Return(sub, nil).Once()
	uow.subscriptions.On("Update", ctx, sub).Return(nil).Once()
	uow.assignments.On("Update", ctx, a).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewConfirmDeliveryCommand(a.ID(), "")
	require.NoError(t, err)

	_, err = newConfirmDeliveryHandler(t, uow, newAcceptingPublisher()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, delegation.Delivered, del.Status())
	assert.Equal(t, subscription.Active, sub.Status())
	uow.assertRepositories(t)
}
