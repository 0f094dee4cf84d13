// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DriverReconciliationJob releases drivers that are still marked DELIVERY
// although no open order references them. This happens when an order is
// deleted while a driver is assigned.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(releaseIdleDriversHandler, "0 * * * * *", metrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
// The default runs once a minute.
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. An invalid schedule
// makes StartAll fail.
package jobs
