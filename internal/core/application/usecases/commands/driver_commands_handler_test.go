package commands_test

import (
	"errors"
	"testing"
	"time"

	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/subscription"
	"mealflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockDriverUoWFactory(uow *MockUoW) *MockDriverUoWFactory {
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}

func TestResetDailyEarningsCommandHandler(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW(ctx)
	uow.drivers.On("ResetDailyEarnings", ctx).Return(int64(12), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	reset, err := commands.NewResetDailyEarningsCommandHandler(newMockDriverUoWFactory(uow)).
		Handle(ctx, commands.NewResetDailyEarningsCommand())

	require.NoError(t, err)
	assert.Equal(t, int64(12), reset)
	uow.assertRepositories(t)
}

func TestResetDailyEarningsCommandHandler_RepositoryError(t *testing.T) {
	ctx := t.Context()
	boom := errors.New("connection reset")

	uow := newMockUoW(ctx)
	uow.drivers.On("ResetDailyEarnings", ctx).Return(int64(0), boom).Once()

	_, err := commands.NewResetDailyEarningsCommandHandler(newMockDriverUoWFactory(uow)).
		Handle(ctx, commands.NewResetDailyEarningsCommand())

	require.ErrorIs(t, err, boom)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestResetDailyEarningsCommandHandler_RejectsZeroCommand(t *testing.T) {
	_, err := commands.NewResetDailyEarningsCommandHandler(new(MockDriverUoWFactory)).
		Handle(t.Context(), commands.ResetDailyEarningsCommand{})

	require.ErrorIs(t, err, commands.ErrResetDailyEarningsCommandIsNotConstructed)
}

func TestRegisterDriverCommandHandler_Verified(t *testing.T) {
	ctx := t.Context()
	location, err := kernel.NewLocation(6.5244, 3.3792)
	require.NoError(t, err)

	uow := newMockUoW(ctx)
	uow.drivers.On("Add", ctx, mock.MatchedBy(func(d *driver.Driver) bool {
		return d.IsEligible()
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewRegisterDriverCommand(kernel.NewUUID(), " Bisi ", 4, location, []string{"Yaba"}, true)
	require.NoError(t, err)

	d, err := commands.NewRegisterDriverCommandHandler(newMockDriverUoWFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Bisi", d.Name())
	uow.assertRepositories(t)
}

func TestNewRegisterDriverCommand_Validation(t *testing.T) {
	location, err := kernel.NewLocation(6.5, 3.3)
	require.NoError(t, err)

	_, err = commands.NewRegisterDriverCommand(kernel.NewUUID(), "", 0, location, nil, false)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegisterChefCommandHandler(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW(ctx)
	uow.chefs.On("Add", ctx, mock.AnythingOfType("*chef.Chef")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewRegisterChefCommand(kernel.NewUUID(), "Chef Ngozi", 6, kitchenAddress(t))
	require.NoError(t, err)

	c, err := commands.NewRegisterChefCommandHandler(newMockUoWFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, c.IsActive())
	assert.Equal(t, 6, c.MaxDailyCapacity())
	uow.assertRepositories(t)
}

func TestCreateSubscriptionCommandHandler(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW(ctx)
	uow.subscriptions.On("Add", ctx, mock.AnythingOfType("*subscription.Subscription")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCreateSubscriptionCommand(kernel.NewUUID(), kernel.NewUUID(), fixedNow, 4)
	require.NoError(t, err)

	sub, err := commands.NewCreateSubscriptionCommandHandler(newMockUoWFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, subscription.PendingActivation, sub.Status())
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 28), sub.EndDate())
	uow.assertRepositories(t)
}
