package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// PlanRouteCommandHandler drafts the stops, lets the advisor suggest a
// visiting order, persists the route and ships every planned order on it.
//
// Example:
//
//	planner := services.NewRoutePlanner("car2", "T-02")
//	handler := NewPlanRouteCommandHandler(uowFactory, planner, advisor)
//	cmd, _ := NewPlanRouteCommand(time.Now())
//	routeID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoOrdersReady) {
//	    return nil
//	}
type PlanRouteCommandHandler struct {
	uowFactory UoWFactory
	planner    services.RoutePlanner
	advisor    ports.Advisor
}

func NewPlanRouteCommandHandler(
	uowFactory UoWFactory,
	planner services.RoutePlanner,
	advisor ports.Advisor,
) PlanRouteCommandHandler {
	return PlanRouteCommandHandler{uowFactory: uowFactory, planner: planner, advisor: advisor}
}

// Handle returns the id of the new route. With no invoiced order waiting it
// fails with a conflict wrapping services.ErrNoOrdersReady.
func (h *PlanRouteCommandHandler) Handle(ctx context.Context, cmd PlanRouteCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	routeRepo := uow.RouteRepository()

	invoiced, err := orderRepo.GetAllInStatus(ctx, order.Invoiced)
	if err != nil {
		return "", err
	}
	carriers, err := routeRepo.GetAllCarriers(ctx)
	if err != nil {
		return "", err
	}

	stops, err := h.planner.Draft(invoiced, carriers)
	if err != nil {
		return "", errs.NewConflictError(err)
	}

	suggested, err := h.advisor.OptimizeRoute(ctx, h.planner.Addresses(stops))
	if err == nil {
		stops = h.planner.Reorder(stops, suggested)
	}

	routeID, err := routeRepo.NextID(ctx)
	if err != nil {
		return "", err
	}
	r, err := h.planner.Build(routeID, cmd.Departure(), stops)
	if err != nil {
		return "", err
	}
	if err = routeRepo.Add(ctx, r); err != nil {
		return "", err
	}

	for _, o := range h.planner.Ready(invoiced) {
		if err = o.AssignRoute(r.ID()); err != nil {
			return "", err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return "", err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return r.ID(), nil
}
