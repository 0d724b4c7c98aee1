package jobs

import (
	"context"
	"time"

	"mealflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultReassignmentAgingSpec runs the sweep every fifteen minutes.
const DefaultReassignmentAgingSpec = "0 */15 * * * *"

type AutoApproveHandler interface {
	Handle(ctx context.Context, cmd commands.AutoApproveReassignmentsCommand) (commands.AutoApproveResult, error)
}

// ReassignmentAgingJob auto-approves low-priority reassignment requests that
// were left pending for too long.
type ReassignmentAgingJob struct {
	handler AutoApproveHandler
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewReassignmentAgingJob creates a job that runs handler on the given cron spec.
// Each sweep is bounded by timeout.
func NewReassignmentAgingJob(
	handler AutoApproveHandler,
	spec string,
	timeout time.Duration,
	logger zerolog.Logger,
) *ReassignmentAgingJob {
	logger = logger.With().Str("component", "reassignment_aging_job").Logger()
	return &ReassignmentAgingJob{
		handler: handler,
		spec:    spec,
		timeout: timeout,
		cron:    newCron(logger),
		logger:  logger,
	}
}

// Start schedules the sweep and starts the cron runner.
func (j *ReassignmentAgingJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { _, _ = j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("spec", j.spec).Msg("reassignment aging job started")
	return nil
}

// RunOnce performs a single sweep. The sweep command calls it directly.
func (j *ReassignmentAgingJob) RunOnce(ctx context.Context) (commands.AutoApproveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	result, err := j.handler.Handle(ctx, commands.NewAutoApproveReassignmentsCommand())
	if err != nil {
		j.logger.Error().Err(err).Msg("reassignment sweep failed")
		return result, err
	}

	ev := j.logger.Debug()
	if result.Approved > 0 || result.Failed > 0 {
		ev = j.logger.Info()
	}
	ev.Int("approved", result.Approved).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("reassignment sweep finished")
	return result, nil
}

// Stop waits for a running sweep to finish.
func (j *ReassignmentAgingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("reassignment aging job stopped")
}

func newCron(logger zerolog.Logger) *cron.Cron {
	cl := cronLogger{logger: logger}
	return cron.New(
		cron.WithSeconds(),
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
}
