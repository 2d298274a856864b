package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ExportSheets handles POST /api/v1/exports/sheets. A webhook failure is
// reported as 502; nothing is retried.
func (s *Server) ExportSheets(ctx echo.Context) error {
	if err := s.h.ExportSheets.Handle(ctx.Request().Context(), commands.NewExportSheetsCommand()); err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to export to spreadsheet", "error", err)
		return ctx.JSON(http.StatusBadGateway, Error{Code: http.StatusBadGateway, Message: "Failed to export to spreadsheet"})
	}
	return ctx.NoContent(http.StatusAccepted)
}

// ExportSnapshot handles GET /api/v1/snapshot.
func (s *Server) ExportSnapshot(ctx echo.Context) error {
	snapshot, err := s.h.ExportSnapshot.Handle(ctx.Request().Context(), queries.NewExportSnapshotQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to export snapshot")
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// ResetDatabase handles POST /api/v1/admin/reset.
func (s *Server) ResetDatabase(ctx echo.Context) error {
	if err := s.h.ResetDatabase.Handle(ctx.Request().Context(), commands.NewResetDatabaseCommand()); err != nil {
		return s.fail(ctx, err, "Failed to reset database")
	}
	return ctx.NoContent(http.StatusNoContent)
}
