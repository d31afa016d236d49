// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the service.
//
// # Available Jobs
//
// 1. OrderAssignmentJob - Runs a batch assignment of every pending order on a configurable schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the schedules and handlers it needs
//	jobManager := jobs.NewJobManager("*/30 * * * * *", assignOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. An empty schedule
// leaves the job disabled, so assignment only happens through the HTTP endpoint.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no pending orders, no available centers)
// - Failed job starts will stop any already running jobs
package jobs
