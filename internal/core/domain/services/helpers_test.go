package services_test

import (
	"testing"
	"time"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

func location(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}

func address(t *testing.T, area string, lat, lng float64) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Test Street", area, location(t, lat, lng))
	require.NoError(t, err)
	return addr
}

func verifiedDriver(t *testing.T, name string, maxCapacity int) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), name, maxCapacity, location(t, 6.5, 3.4), nil)
	require.NoError(t, err)
	d.Verify()
	return d
}

func deliveryTo(t *testing.T, area string, deliveryAt time.Time, duration time.Duration) *assignment.Assignment {
	t.Helper()
	target, err := assignment.OrderTarget(kernel.NewUUID())
	require.NoError(t, err)

	a, err := assignment.NewAssignment(
		kernel.NewUUID(), kernel.NewUUID(), target,
		address(t, "Ikeja", 6.6, 3.35), address(t, area, 6.45, 3.45),
		assignment.Estimate{PickupAt: deliveryAt.Add(-duration), DeliveryAt: deliveryAt, Duration: duration},
		nil, now,
	)
	require.NoError(t, err)
	return a
}
