package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// AdvanceRouteCommandHandler advances a route. When the route completes,
// every order delivered on it is completed in the same transaction.
type AdvanceRouteCommandHandler struct {
	uowFactory UoWFactory
}

func NewAdvanceRouteCommandHandler(uowFactory UoWFactory) AdvanceRouteCommandHandler {
	return AdvanceRouteCommandHandler{uowFactory: uowFactory}
}

func (h *AdvanceRouteCommandHandler) Handle(ctx context.Context, cmd AdvanceRouteCommand) (route.Status, error) {
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

	routeRepo := uow.RouteRepository()
	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return "", err
	}
	if err = r.Advance(); err != nil {
		return "", err
	}
	if err = routeRepo.Update(ctx, r); err != nil {
		return "", err
	}

	if r.Status() == route.Completed {
		orderRepo := uow.OrderRepository()
		for _, id := range r.OrderIDs() {
			o, getErr := orderRepo.Get(ctx, id)
			if getErr != nil {
				return "", getErr
			}
			if err = o.Complete(); err != nil {
				return "", err
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return "", err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return r.Status(), nil
}
