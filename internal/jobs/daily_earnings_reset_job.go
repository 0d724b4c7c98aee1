package jobs

import (
	"context"
	"time"

	"mealflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultDailyEarningsResetSpec runs at midnight UTC.
const DefaultDailyEarningsResetSpec = "0 0 0 * * *"

type ResetEarningsHandler interface {
	Handle(ctx context.Context, cmd commands.ResetDailyEarningsCommand) (int64, error)
}

// DailyEarningsResetJob zeroes every driver's daily earnings once a day.
type DailyEarningsResetJob struct {
	handler ResetEarningsHandler
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewDailyEarningsResetJob creates a job that runs handler on the given cron spec.
// Each run is bounded by timeout.
func NewDailyEarningsResetJob(
	handler ResetEarningsHandler,
	spec string,
	timeout time.Duration,
	logger zerolog.Logger,
) *DailyEarningsResetJob {
	logger = logger.With().Str("component", "daily_earnings_reset_job").Logger()
	return &DailyEarningsResetJob{
		handler: handler,
		spec:    spec,
		timeout: timeout,
		cron:    newCron(logger),
		logger:  logger,
	}
}

// Start schedules the reset and starts the cron runner.
func (j *DailyEarningsResetJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { _ = j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("spec", j.spec).Msg("daily earnings reset job started")
	return nil
}

// RunOnce resets daily earnings immediately.
func (j *DailyEarningsResetJob) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	n, err := j.handler.Handle(ctx, commands.NewResetDailyEarningsCommand())
	if err != nil {
		j.logger.Error().Err(err).Msg("daily earnings reset failed")
		return err
	}
	j.logger.Info().Int64("drivers", n).Msg("daily earnings reset")
	return nil
}

// Stop waits for a running reset to finish.
func (j *DailyEarningsResetJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("daily earnings reset job stopped")
}
