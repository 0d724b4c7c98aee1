package order_test

import (
	"testing"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	loc, err := kernel.NewLocation(6.4281, 3.4219)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("1 Akin Adesola St", "Victoria Island", loc)
	require.NoError(t, err)
	return addr
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testAddress(t), now)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, now, o.CreatedAt())
		assert.Nil(t, o.DeliveredAt())
		assert.False(t, o.BelongsToSubscription())
		assert.Equal(t, 0, o.Version())
		assert.NoError(t, o.Validate())
	})

	t.Run("collects invalid fields", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, kernel.Address{}, now)
		require.Error(t, err)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
		assert.Contains(t, err.Error(), "customerID")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
		assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	})
}

func TestNewSubscriptionOrder(t *testing.T) {
	slot, err := kernel.ParseMealSlot("2025-03-05", "lunch")
	require.NoError(t, err)
	subID := kernel.NewUUID()

	o, err := order.NewSubscriptionOrder(kernel.NewUUID(), kernel.NewUUID(), subID, slot, testAddress(t), now)
	require.NoError(t, err)

	assert.True(t, o.BelongsToSubscription())
	assert.True(t, subID.IsEqual(*o.SubscriptionID()))
	assert.True(t, slot.IsEqual(*o.MealSlot()))

	_, err = order.NewSubscriptionOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, kernel.MealSlot{}, testAddress(t), now)
	assert.Error(t, err)
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("happy path stamps every stage", func(t *testing.T) {
		o := newPendingOrder(t)

		for i, target := range []order.Status{order.Confirmed, order.InProgress, order.Completed, order.Delivered} {
			require.NoError(t, o.TransitionTo(target, "", now.Add(time.Duration(i+1)*time.Hour)))
			assert.Equal(t, target, o.Status())
		}

		require.NotNil(t, o.ConfirmedAt())
		require.NotNil(t, o.InProgressAt())
		require.NotNil(t, o.CompletedAt())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, now.Add(4*time.Hour), *o.DeliveredAt())
		assert.Nil(t, o.CancelledAt())
	})

	t.Run("skipping a stage is rejected and leaves state untouched", func(t *testing.T) {
		o := newPendingOrder(t)
		before := o.Snapshot()

		err := o.TransitionTo(order.Delivered, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, "invalid transition: order cannot move from Pending to Delivered", err.Error())
		assert.Equal(t, before, o.Snapshot())
	})

	t.Run("self move is rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		assert.ErrorIs(t, o.TransitionTo(order.Pending, "", now), errs.ErrInvalidTransition)
	})

	t.Run("backward move is rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.TransitionTo(order.Confirmed, "", now))
		require.NoError(t, o.TransitionTo(order.InProgress, "", now))

		assert.ErrorIs(t, o.TransitionTo(order.Confirmed, "", now), errs.ErrInvalidTransition)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("cancel stores reason", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.TransitionTo(order.Confirmed, "", now))

		require.NoError(t, o.TransitionTo(order.Cancelled, "customer changed mind", now))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "customer changed mind", o.CancellationReason())
		require.NotNil(t, o.CancelledAt())
	})

	t.Run("cancelled is final", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.TransitionTo(order.Cancelled, "", now))

		for _, target := range allStatuses {
			assert.ErrorIs(t, o.TransitionTo(target, "", now), errs.ErrInvalidTransition)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		o := newPendingOrder(t)
		err := o.TransitionTo(order.Status(99), "", now)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_AssignChef(t *testing.T) {
	o := newPendingOrder(t)
	chefID := kernel.NewUUID()

	require.NoError(t, o.AssignChef(chefID))
	assert.True(t, chefID.IsEqual(*o.ChefID()))

	require.ErrorIs(t, o.AssignChef(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)

	require.NoError(t, o.TransitionTo(order.Cancelled, "", now))
	assert.ErrorIs(t, o.AssignChef(kernel.NewUUID()), errs.ErrInvalidState)
	assert.True(t, chefID.IsEqual(*o.ChefID()))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.TransitionTo(order.Confirmed, "", now))
		require.NoError(t, o.RecordPayment(order.PaymentPaid))
		snap := o.Snapshot()
		snap.Version = 7

		restored, err := order.RestoreOrder(snap)
		require.NoError(t, err)

		assert.Equal(t, snap, restored.Snapshot())
		assert.Equal(t, 7, restored.Version())
	})

	t.Run("deliveredAt without delivered status", func(t *testing.T) {
		snap := newPendingOrder(t).Snapshot()
		at := now
		snap.DeliveredAt = &at

		_, err := order.RestoreOrder(snap)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cancelled without cancelledAt", func(t *testing.T) {
		snap := newPendingOrder(t).Snapshot()
		snap.Status = order.Cancelled

		_, err := order.RestoreOrder(snap)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("subscription without slot", func(t *testing.T) {
		snap := newPendingOrder(t).Snapshot()
		sub := kernel.NewUUID()
		snap.SubscriptionID = &sub

		_, err := order.RestoreOrder(snap)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
