// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StorageProbeJob pings the order store on a schedule (default "@every 30s")
// and keeps the last outcome for the /ready endpoint and the
// orders_storage_up gauge.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	probe := jobs.NewStorageProbeJob(store, metrics, "@every 30s", logger)
//	jobManager := jobs.NewJobManager(probe)
//
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("start jobs: %w", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Probe failures are logged once per state change, not on every tick.
// A failed job start stops every job that was already running.
package jobs
