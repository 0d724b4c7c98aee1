package commands

import (
	"context"
)

// ResetDailyEarningsCommandHandler zeroes every driver's daily earnings. It is
// run by the nightly job and returns the number of drivers touched.
type ResetDailyEarningsCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewResetDailyEarningsCommandHandler creates a handler that zeroes daily earnings.
func NewResetDailyEarningsCommandHandler(uowFactory DriverUoWFactory) ResetDailyEarningsCommandHandler {
	return ResetDailyEarningsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle zeroes every driver's daily earnings and returns how many rows changed.
func (h ResetDailyEarningsCommandHandler) Handle(ctx context.Context, cmd ResetDailyEarningsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reset, err := uow.DriverRepository().ResetDailyEarnings(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return reset, nil
}
