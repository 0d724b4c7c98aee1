// Package jobs provides scheduled background tasks for the orchestration
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with
// seconds, evaluated in UTC):
//
//  1. ReassignmentAgingJob - auto-approves low-priority reassignment requests
//     that have been pending longer than the configured age
//  2. DailyEarningsResetJob - zeroes every driver's daily earnings
//
// JobManager starts and stops both:
//
//	jobManager := jobs.NewJobManager(agingJob, earningsJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A run that is still executing when its next tick fires is skipped, and a
// panicking run is recovered and logged. Every run has its own timeout.
package jobs
