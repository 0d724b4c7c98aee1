package notifications_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/core/ports"
	"mealflow/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecipientDirectory struct{ mock.Mock }

func (m *MockRecipientDirectory) TokensFor(ctx context.Context, role ports.RecipientRole, userID kernel.UUID) ([]string, error) {
	args := m.Called(ctx, role, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecipientDirectory) AdminTokens(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPushTransport struct{ mock.Mock }

func (m *MockPushTransport) Send(ctx context.Context, role ports.RecipientRole, msg ports.PushMessage) error {
	args := m.Called(ctx, role, msg)
	return args.Error(0)
}

func testEvent(customerID, chefID *kernel.UUID) notifications.Event {
	return notifications.Event{
		Kind:        notifications.OrderStatusChanged,
		CustomerID:  customerID,
		ChefID:      chefID,
		NotifyAdmin: true,
		Title:       "Order Confirmed",
		Body:        "confirmed",
		Data:        map[string]string{"orderId": "o-1"},
	}
}

func TestFanout_Dispatch_AllTargets(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	chefID := kernel.NewUUID()

	directory := new(MockRecipientDirectory)
	directory.On("TokensFor", ctx, ports.RoleCustomer, customerID).Return([]string{"c-1", "c-2"}, nil).Once()
	directory.On("TokensFor", ctx, ports.RoleChef, chefID).Return([]string{"k-1"}, nil).Once()
	directory.On("AdminTokens", ctx).Return([]string{"a-1"}, nil).Once()

	transport := new(MockPushTransport)
	transport.On("Send", ctx, mock.Anything, mock.AnythingOfType("ports.PushMessage")).Return(nil).Times(4)

	report := notifications.NewFanout(directory, transport).Dispatch(ctx, testEvent(&customerID, &chefID))

	assert.Equal(t, 4, report.TotalNotificationsSent)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Skipped)
	directory.AssertExpectations(t)
	transport.AssertExpectations(t)
}

func TestFanout_Dispatch_ChefChannelFailure(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	chefID := kernel.NewUUID()

	directory := new(MockRecipientDirectory)
	directory.On("TokensFor", ctx, ports.RoleCustomer, customerID).Return([]string{"c-1"}, nil)
	directory.On("TokensFor", ctx, ports.RoleChef, chefID).Return([]string{"k-1"}, nil)
	directory.On("AdminTokens", ctx).Return([]string{"a-1"}, nil)

	transport := new(MockPushTransport)
	transport.On("Send", ctx, ports.RoleCustomer, mock.Anything).Return(nil)
	transport.On("Send", ctx, ports.RoleChef, mock.Anything).Return(errors.New("broker down"))
	transport.On("Send", ctx, ports.RoleAdmin, mock.Anything).Return(nil)

	report := notifications.NewFanout(directory, transport).Dispatch(ctx, testEvent(&customerID, &chefID))

	assert.Equal(t, 2, report.TotalNotificationsSent)
	require.Len(t, report.Errors, 1)
	require.ErrorIs(t, report.Errors[0], errs.ErrNotificationDeliveryFailed)
	assert.Contains(t, report.Errors[0].Error(), "chef")
	assert.Contains(t, report.Errors[0].Error(), "broker down")
}

func TestFanout_Dispatch_SkipsMissingRecipients(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	directory := new(MockRecipientDirectory)
	directory.On("TokensFor", ctx, ports.RoleCustomer, customerID).Return([]string{}, nil).Once()

	transport := new(MockPushTransport)

	event := testEvent(&customerID, nil)
	event.NotifyAdmin = false
	report := notifications.NewFanout(directory, transport).Dispatch(ctx, event)

	assert.Zero(t, report.TotalNotificationsSent)
	assert.Empty(t, report.Errors)
	assert.ElementsMatch(t,
		[]ports.RecipientRole{ports.RoleCustomer, ports.RoleChef, ports.RoleAdmin},
		report.Skipped,
	)
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestFanout_Dispatch_DirectoryError(t *testing.T) {
	ctx := t.Context()

	directory := new(MockRecipientDirectory)
	directory.On("AdminTokens", ctx).Return(nil, errors.New("db down")).Once()

	transport := new(MockPushTransport)

	report := notifications.NewFanout(directory, transport).Dispatch(ctx, testEvent(nil, nil))

	assert.Zero(t, report.TotalNotificationsSent)
	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Errors[0], errs.ErrNotificationDeliveryFailed)
}

func TestFanout_Dispatch_MessageCarriesKind(t *testing.T) {
	ctx := t.Context()

	directory := new(MockRecipientDirectory)
	directory.On("AdminTokens", ctx).Return([]string{"a-1"}, nil).Once()

	transport := new(MockPushTransport)
	transport.On("Send", ctx, ports.RoleAdmin, mock.MatchedBy(func(msg ports.PushMessage) bool {
		return msg.RecipientToken == "a-1" &&
			msg.Data["kind"] == string(notifications.OrderStatusChanged) &&
			msg.Data["orderId"] == "o-1"
	})).Return(nil).Once()

	report := notifications.NewFanout(directory, transport).Dispatch(ctx, testEvent(nil, nil))

	assert.Equal(t, 1, report.TotalNotificationsSent)
	transport.AssertExpectations(t)
}

func TestAsyncDispatcher_PublishSurvivesCancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	directory := new(MockRecipientDirectory)
	directory.On("AdminTokens", mock.Anything).Return([]string{"a-1"}, nil).Once()

	transport := new(MockPushTransport)
	transport.On("Send", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }),
		ports.RoleAdmin, mock.Anything).Return(nil).Once()

	dispatcher := notifications.NewAsyncDispatcher(
		notifications.NewFanout(directory, transport), time.Second, zerolog.Nop(),
	)

	cancel()
	dispatcher.Publish(ctx, testEvent(nil, nil))
	dispatcher.Wait()

	transport.AssertExpectations(t)
}

func TestNewOrderStatusChangedEvent(t *testing.T) {
	location, err := kernel.NewLocation(6.5, 3.4)
	require.NoError(t, err)
	address, err := kernel.NewAddress("1 Allen Ave", "Ikeja", location)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, time.Now())
	require.NoError(t, err)

	event := notifications.NewOrderStatusChangedEvent(o)

	assert.Equal(t, notifications.OrderStatusChanged, event.Kind)
	require.NotNil(t, event.CustomerID)
	assert.True(t, event.CustomerID.IsEqual(o.CustomerID()))
	assert.Nil(t, event.ChefID)
	assert.True(t, event.NotifyAdmin)
	assert.Equal(t, o.ID().String(), event.Data["orderId"])
	assert.Equal(t, o.Status().String(), event.Data["status"])
}
