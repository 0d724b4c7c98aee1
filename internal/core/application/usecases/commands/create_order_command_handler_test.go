package commands_test

import (
	"testing"

	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_OneOffOrder(t *testing.T) {
	ctx := t.Context()
	c := newTestChef(t, 3)
	chefID := c.ID()

	uow := newMockUoW(ctx)
	uow.chefs.On("Get", ctx, chefID).Return(c, nil).Once()
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), customerAddress(t), &chefID, nil, nil)
	require.NoError(t, err)

	o, err := commands.NewCreateOrderCommandHandler(newMockUoWFactory(uow), fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, fixedNow, o.CreatedAt())
	assert.False(t, o.BelongsToSubscription())
	require.NotNil(t, o.ChefID())
	assert.True(t, o.ChefID().IsEqual(chefID))
	uow.assertRepositories(t)
}

func TestCreateOrderCommandHandler_SubscriptionOrderInheritsDelegatedChef(t *testing.T) {
	ctx := t.Context()
	sub := newTestSubscription(t)
	c := newTestChef(t, 3)
	del := newDelegatedSubscription(t, sub)
	require.NoError(t, del.AssignChef(c.ID(), fixedNow))
	subscriptionID := sub.ID()
	slot := testSlot(t, "2025-03-05", "lunch")

	uow := newMockUoW(ctx)
	uow.subscriptions.On("Get", ctx, subscriptionID).Return(sub, nil).Once()
	uow.delegations.On("GetBySubscription", ctx, subscriptionID).Return(del, nil).Once()
	uow.chefs.On("Get", ctx, c.ID()).Return(c, nil).Once()
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), sub.CustomerID(), customerAddress(t), nil, &subscriptionID, &slot,
	)
	require.NoError(t, err)

	o, err := commands.NewCreateOrderCommandHandler(newMockUoWFactory(uow), fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, o.BelongsToSubscription())
	require.NotNil(t, o.MealSlot())
	assert.True(t, o.MealSlot().IsEqual(slot))
	require.NotNil(t, o.ChefID())
	assert.True(t, o.ChefID().IsEqual(c.ID()))
	uow.assertRepositories(t)
}

func TestCreateOrderCommandHandler_UnknownChef(t *testing.T) {
	ctx := t.Context()
	chefID := kernel.NewUUID()

	uow := newMockUoW(ctx)
	uow.chefs.On("Get", ctx, chefID).Return(nil, errs.NewObjectNotFoundError("chef", chefID)).Once()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), customerAddress(t), &chefID, nil, nil)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommandHandler(newMockUoWFactory(uow), fixedClock).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewCreateOrderCommand_SubscriptionNeedsSlot(t *testing.T) {
	subscriptionID := kernel.NewUUID()

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), customerAddress(t), nil, &subscriptionID, nil)

	require.Error(t, err)
}
