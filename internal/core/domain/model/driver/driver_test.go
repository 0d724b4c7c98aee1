package driver_test

import (
	"testing"
	"time"

	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidDriver(t *testing.T, maxCapacity int) *driver.Driver {
	t.Helper()
	loc, err := kernel.NewLocation(6.5, 3.35)
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), "Tunde", maxCapacity, loc, []string{" Yaba ", "yaba", "Surulere", ""})
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		d := createValidDriver(t, 3)

		assert.NoError(t, d.Validate())
		assert.False(t, d.IsEligible(), "new drivers are not verified yet")
		assert.Equal(t, []string{"yaba", "surulere"}, d.ServiceAreas())
		assert.True(t, d.DailyEarnings().IsZero())
		assert.Nil(t, d.LastAssignedAt())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, " ", 0, kernel.Location{}, nil)
		require.Error(t, err)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func TestDriver_Eligibility(t *testing.T) {
	d := createValidDriver(t, 2)
	d.Verify()
	assert.True(t, d.IsEligible())

	d.SetAvailable(false)
	assert.False(t, d.IsEligible())

	d.SetAvailable(true)
	d.Deactivate()
	assert.False(t, d.IsEligible())
}

func TestDriver_HasCapacity(t *testing.T) {
	d := createValidDriver(t, 2)

	assert.True(t, d.HasCapacity(0))
	assert.True(t, d.HasCapacity(1))
	assert.False(t, d.HasCapacity(2))
	assert.False(t, d.HasCapacity(3))
}

func TestDriver_ServesArea(t *testing.T) {
	d := createValidDriver(t, 2)

	assert.True(t, d.ServesArea("YABA"))
	assert.True(t, d.ServesArea(" surulere"))
	assert.False(t, d.ServesArea("Lekki"))
}

func TestDriver_MarkAssigned(t *testing.T) {
	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	d := createValidDriver(t, 2)

	err := d.MarkAssigned(now)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Nil(t, d.LastAssignedAt())

	d.Verify()
	require.NoError(t, d.MarkAssigned(now))
	require.NotNil(t, d.LastAssignedAt())
	assert.Equal(t, now, *d.LastAssignedAt())
}

func TestDriver_Earnings(t *testing.T) {
	d := createValidDriver(t, 2)

	require.NoError(t, d.RecordDelivery(decimal.NewFromInt(500)))
	require.NoError(t, d.RecordDelivery(decimal.RequireFromString("250.50")))

	assert.True(t, decimal.RequireFromString("750.50").Equal(d.DailyEarnings()))
	assert.True(t, decimal.RequireFromString("750.50").Equal(d.TotalEarnings()))
	assert.Equal(t, 2, d.CompletedDeliveries())

	require.ErrorIs(t, d.RecordDelivery(decimal.NewFromInt(-1)), errs.ErrValueIsInvalid)

	d.ResetDailyEarnings()
	assert.True(t, d.DailyEarnings().IsZero())
	assert.True(t, decimal.RequireFromString("750.50").Equal(d.TotalEarnings()))
}

func TestRestoreDriver(t *testing.T) {
	d := createValidDriver(t, 2)
	d.Verify()
	require.NoError(t, d.RecordDelivery(decimal.NewFromInt(500)))
	snap := d.Snapshot()
	snap.Version = 9

	restored, err := driver.RestoreDriver(snap)
	require.NoError(t, err)
	assert.Equal(t, snap, restored.Snapshot())

	snap.TotalEarnings = decimal.NewFromInt(-5)
	_, err = driver.RestoreDriver(snap)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
