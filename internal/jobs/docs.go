// Package jobs provides scheduled background tasks for the warehouse service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with seconds.
//
// # Available Jobs
//
// 1. SheetsSyncJob - pushes inventory, orders and inbound lots to the spreadsheet webhook
// 2. InboundImportJob - imports new customs lots from the published receiving sheet
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Schedules{
//		SheetsSync:    "0 */15 * * * *",
//		InboundImport: "0 0 * * * *",
//	}, exportSheetsHandler, importInboundHandler, inboundCSVURL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the job. The inbound import is also disabled
// when no sheet URL is configured.
//
// # Error Handling
//
// Failed runs are logged and retried only at the next tick.
package jobs
