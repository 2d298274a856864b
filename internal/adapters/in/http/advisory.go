package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"github.com/labstack/echo/v4"
)

type AnalyzeEmailRequest struct {
	Text string `json:"text"`
}

type StorageAdviceRequest struct {
	Shelf ports.Dimensions `json:"shelf"`
	Item  ports.Dimensions `json:"item"`
}

// AnalyzeEmail handles POST /api/v1/advisor/email. The answer is only a
// suggestion; applying it is a separate request.
func (s *Server) AnalyzeEmail(ctx echo.Context) error {
	var req AnalyzeEmailRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewAnalyzeEmailQuery(req.Text)
	if err != nil {
		return badRequest(ctx, err)
	}

	analysis, err := s.h.AnalyzeEmail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to analyze email")
	}
	return ctx.JSON(http.StatusOK, analysis)
}

// AnalyzeOverstock handles GET /api/v1/advisor/overstock.
func (s *Server) AnalyzeOverstock(ctx echo.Context) error {
	suggestions, err := s.h.AnalyzeOverstock.Handle(ctx.Request().Context(), queries.NewAnalyzeOverstockQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to analyze overstock")
	}
	return ctx.JSON(http.StatusOK, suggestions)
}

// StorageAdvice handles POST /api/v1/advisor/storage.
func (s *Server) StorageAdvice(ctx echo.Context) error {
	var req StorageAdviceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewStorageAdviceQuery(req.Shelf, req.Item)
	if err != nil {
		return badRequest(ctx, err)
	}

	advice, err := s.h.StorageAdvice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to compute storage advice")
	}
	return ctx.JSON(http.StatusOK, advice)
}
