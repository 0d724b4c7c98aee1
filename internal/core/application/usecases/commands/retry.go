package commands

import (
	"context"
	"errors"

	"mealflow/internal/pkg/errs"
)

// DefaultRetryAttempts is how often a transaction that lost a version race is
// replayed before the conflict is surfaced.
const DefaultRetryAttempts = 3

// withOptimisticRetry replays fn while it fails with errs.ErrConflict. Each
// attempt must open its own unit of work so it re-reads fresh versions.
func withOptimisticRetry(ctx context.Context, attempts int, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for range attempts {
		err = fn(ctx)
		if err == nil || !errors.Is(err, errs.ErrConflict) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}
