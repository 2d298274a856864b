package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type PlanRouteRequest struct {
	Departure *time.Time `json:"departure"`
}

// PlanRoute handles POST /api/v1/routes. The departure defaults to now.
func (s *Server) PlanRoute(ctx echo.Context) error {
	var req PlanRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	departure := time.Now()
	if req.Departure != nil {
		departure = *req.Departure
	}

	cmd, err := commands.NewPlanRouteCommand(departure)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.h.PlanRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to plan route")
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetRoute handles GET /api/v1/routes/:routeId.
func (s *Server) GetRoute(ctx echo.Context) error {
	query, err := queries.NewGetRouteQuery(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.h.GetRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve route")
	}
	return ctx.JSON(http.StatusOK, view)
}

// AdvanceRoute handles POST /api/v1/routes/:routeId/advance.
func (s *Server) AdvanceRoute(ctx echo.Context) error {
	cmd, err := commands.NewAdvanceRouteCommand(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	status, err := s.h.AdvanceRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to advance route")
	}
	return ctx.JSON(http.StatusOK, StatusResponse{Status: string(status)})
}
