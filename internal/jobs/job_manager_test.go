package jobs_test

import (
	"io"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// yearly never fires while a test runs.
const yearly = "0 0 0 1 1 *"

func newManager(schedules jobs.Schedules, url string) *jobs.JobManager {
	return jobs.NewJobManager(
		schedules,
		commands.NewExportSheetsCommandHandler(nil, nil),
		commands.NewImportInboundCSVCommandHandler(nil, nil),
		url,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestJobManager_EnablesConfiguredJobs(t *testing.T) {
	assert.Equal(t, 2, newManager(jobs.Schedules{SheetsSync: yearly, InboundImport: yearly}, "http://sheet/pub.csv").Len())
	assert.Equal(t, 1, newManager(jobs.Schedules{SheetsSync: yearly, InboundImport: yearly}, "").Len())
	assert.Equal(t, 0, newManager(jobs.Schedules{}, "http://sheet/pub.csv").Len())
}

func TestJobManager_StartAndStop(t *testing.T) {
	jm := newManager(jobs.Schedules{SheetsSync: yearly, InboundImport: yearly}, "http://sheet/pub.csv")

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_InvalidScheduleStopsStartedJobs(t *testing.T) {
	jm := newManager(jobs.Schedules{SheetsSync: yearly, InboundImport: "every now and then"}, "http://sheet/pub.csv")

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "inbound import")
	jm.StopAll()
}
