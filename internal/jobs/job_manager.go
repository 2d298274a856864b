package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
)

// Schedules are the cron specs of the jobs. An empty spec disables a job.
type Schedules struct {
	SheetsSync    string
	InboundImport string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs    []job
	names   []string
	started []job
}

// NewJobManager creates the enabled jobs.
func NewJobManager(
	schedules Schedules,
	exportSheetsHandler commands.ExportSheetsCommandHandler,
	importInboundHandler commands.ImportInboundCSVCommandHandler,
	inboundCSVURL string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if schedules.SheetsSync != "" {
		jm.add("sheets sync", NewSheetsSyncJob(schedules.SheetsSync, exportSheetsHandler, logger))
	}
	if schedules.InboundImport != "" && inboundCSVURL != "" {
		jm.add("inbound import", NewInboundImportJob(schedules.InboundImport, importInboundHandler, inboundCSVURL, logger))
	}
	return jm
}

func (jm *JobManager) add(name string, j job) {
	jm.jobs = append(jm.jobs, j)
	jm.names = append(jm.names, name)
}

// Len is the number of enabled jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}

// StartAll starts all scheduled jobs. When one fails the ones already
// started are stopped.
func (jm *JobManager) StartAll() error {
	for idx, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", jm.names[idx], err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the running jobs and waits for runs in flight.
func (jm *JobManager) StopAll() {
	for idx := len(jm.started) - 1; idx >= 0; idx-- {
		jm.started[idx].Stop()
	}
	jm.started = nil
}
