package queries_test

import (
	"context"
	"testing"
	"time"

	"mealflow/internal/core/application/usecases/queries"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/subscription"
	"mealflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timelineNow = time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

func newTimelineHandler(t *testing.T) (*MockSubscriptionRepository, *MockDelegationRepository, queries.GetSubscriptionTimelineQueryHandler, *subscription.Subscription) {
	t.Helper()
	sub, err := subscription.NewSubscription(kernel.NewUUID(), kernel.NewUUID(), timelineNow, 4)
	require.NoError(t, err)

	subs := &MockSubscriptionRepository{}
	dels := &MockDelegationRepository{}
	return subs, dels, queries.NewGetSubscriptionTimelineQueryHandler(subs, dels), sub
}

func TestGetSubscriptionTimelineQueryHandler_UnknownSubscription(t *testing.T) {
	ctx := context.Background()
	subs, _, handler, sub := newTimelineHandler(t)
	subs.On("Get", ctx, sub.ID()).Return(nil, errs.NewObjectNotFoundError("subscription", sub.ID())).Once()

	query, err := queries.NewGetSubscriptionTimelineQuery(sub.ID())
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetSubscriptionTimelineQueryHandler_WithoutDelegation(t *testing.T) {
	ctx := context.Background()
	subs, dels, handler, sub := newTimelineHandler(t)
	subs.On("Get", ctx, sub.ID()).Return(sub, nil).Once()
	dels.On("GetBySubscription", ctx, sub.ID()).Return(nil, errs.NewObjectNotFoundError("delegation", sub.ID())).Once()

	query, err := queries.NewGetSubscriptionTimelineQuery(sub.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "Not Assigned", resp.Status)
	assert.Nil(t, resp.ChefID)
	assert.Empty(t, resp.Entries)
}

func TestGetSubscriptionTimelineQueryHandler_AssignedWithoutEntries(t *testing.T) {
	ctx := context.Background()
	subs, dels, handler, sub := newTimelineHandler(t)

	del, err := delegation.NewDelegation(kernel.NewUUID(), sub.ID())
	require.NoError(t, err)
	chefID := kernel.NewUUID()
	require.NoError(t, del.AssignChef(chefID, timelineNow))

	subs.On("Get", ctx, sub.ID()).Return(sub, nil).Once()
	dels.On("GetBySubscription", ctx, sub.ID()).Return(del, nil).Once()

	query, err := queries.NewGetSubscriptionTimelineQuery(sub.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "Assigned", resp.Status)
	require.NotNil(t, resp.ChefID)
	assert.Equal(t, chefID.String(), *resp.ChefID)
}

func TestGetSubscriptionTimelineQueryHandler_DeliveredBreakfast(t *testing.T) {
	ctx := context.Background()
	subs, dels, handler, sub := newTimelineHandler(t)

	del, err := delegation.NewDelegation(kernel.NewUUID(), sub.ID())
	require.NoError(t, err)
	require.NoError(t, del.AssignChef(kernel.NewUUID(), timelineNow))
	slot, err := kernel.NewMealSlot(timelineNow, kernel.Breakfast)
	require.NoError(t, err)
	require.NoError(t, del.MarkMealDelivered(slot, timelineNow))

	subs.On("Get", ctx, sub.ID()).Return(sub, nil).Once()
	dels.On("GetBySubscription", ctx, sub.ID()).Return(del, nil).Once()

	query, err := queries.NewGetSubscriptionTimelineQuery(sub.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "Delivered", resp.Status)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, queries.TimelineEntry{
		Date:      "2025-03-04",
		MealTime:  "breakfast",
		Status:    "delivered",
		UpdatedAt: timelineNow,
	}, resp.Entries[0])
}
