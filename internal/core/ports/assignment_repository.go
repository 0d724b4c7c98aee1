package ports

import (
	"context"
	"time"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"
)

type AssignmentRepository interface {
	// Add fails with errs.ErrConflict when the target already has an active
	// assignment.
	Add(ctx context.Context, aggregate *assignment.Assignment) error
	Update(ctx context.Context, aggregate *assignment.Assignment) error
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetActiveForTarget returns the non-terminal assignment for an order or a
	// subscription day, or errs.ErrObjectNotFound.
	GetActiveForTarget(ctx context.Context, target assignment.Target) (*assignment.Assignment, error)

	// CountActiveByDrivers returns the number of non-terminal assignments per
	// driver id. Drivers without any are absent from the map.
	CountActiveByDrivers(ctx context.Context, driverIDs []kernel.UUID) (map[kernel.UUID]int, error)

	// ListByDriverInWindow returns the driver's assignments whose estimated
	// delivery falls in [from, to).
	ListByDriverInWindow(ctx context.Context, driverID kernel.UUID, from, to time.Time) ([]*assignment.Assignment, error)
}
