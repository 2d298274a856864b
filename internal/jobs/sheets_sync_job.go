package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SheetsSyncJob periodically exports the warehouse state to the spreadsheet.
type SheetsSyncJob struct {
	handler  commands.ExportSheetsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSheetsSyncJob(schedule string, handler commands.ExportSheetsCommandHandler, logger *slog.Logger) *SheetsSyncJob {
	return &SheetsSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "sheets_sync_job"),
	}
}

func (j *SheetsSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.handler.Handle(ctx, commands.NewExportSheetsCommand()); err != nil {
			j.logger.ErrorContext(ctx, "Sheets sync job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sheets sync job started", "schedule", j.schedule)
	return nil
}

func (j *SheetsSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sheets sync job stopped")
}
