package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reassignmentAgingJob  *ReassignmentAgingJob
	dailyEarningsResetJob *DailyEarningsResetJob
}

// NewJobManager creates a JobManager over the aging and earnings jobs.
func NewJobManager(aging *ReassignmentAgingJob, earnings *DailyEarningsResetJob) *JobManager {
	return &JobManager{
		reassignmentAgingJob:  aging,
		dailyEarningsResetJob: earnings,
	}
}

// StartAll starts all scheduled jobs. If one fails to start, the ones already
// running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.reassignmentAgingJob.Start(); err != nil {
		return fmt.Errorf("failed to start reassignment aging job: %w", err)
	}

	if err := jm.dailyEarningsResetJob.Start(); err != nil {
		jm.reassignmentAgingJob.Stop()
		return fmt.Errorf("failed to start daily earnings reset job: %w", err)
	}

	return nil
}

// StopAll stops all jobs and waits for running executions.
func (jm *JobManager) StopAll() {
	jm.reassignmentAgingJob.Stop()
	jm.dailyEarningsResetJob.Stop()
}
