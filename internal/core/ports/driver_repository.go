package ports

import (
	"context"

	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"
)

type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update is a compare-and-swap on the driver version. Driver selection
	// relies on it to detect two transactions picking the same driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// ListEligible returns active, available and verified drivers. Drivers
	// serving preferredArea come first, then the longest idle.
	ListEligible(ctx context.Context, preferredArea string) ([]*driver.Driver, error)

	// ResetDailyEarnings zeroes every driver's daily earnings and returns the
	// number of rows touched.
	ResetDailyEarnings(ctx context.Context) (int64, error)
}
