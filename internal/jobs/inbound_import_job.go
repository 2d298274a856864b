package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InboundImportJob periodically imports new customs lots from the
// published receiving sheet. Lots already stored are left alone.
type InboundImportJob struct {
	handler  commands.ImportInboundCSVCommandHandler
	schedule string
	url      string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewInboundImportJob(
	schedule string,
	handler commands.ImportInboundCSVCommandHandler,
	url string,
	logger *slog.Logger,
) *InboundImportJob {
	return &InboundImportJob{
		handler:  handler,
		schedule: schedule,
		url:      url,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "inbound_import_job"),
	}
}

func (j *InboundImportJob) Start() error {
	cmd, err := commands.NewImportInboundCSVCommand(j.url)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		res, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Inbound import job failed", "error", handleErr)
			return
		}
		if res.Created > 0 {
			j.logger.InfoContext(ctx, "Inbound lots imported",
				"created", res.Created, "existing", res.Existing, "ignored_lines", res.IgnoredLines)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Inbound import job started", "schedule", j.schedule)
	return nil
}

func (j *InboundImportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Inbound import job stopped")
}
