package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// CreateBundleCommandHandler appends a bundle to an order, moving it to
// packed. Locked and terminal orders reject new bundles.
type CreateBundleCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateBundleCommandHandler(uowFactory OrderUoWFactory) CreateBundleCommandHandler {
	return CreateBundleCommandHandler{uowFactory: uowFactory}
}

func (h *CreateBundleCommandHandler) Handle(ctx context.Context, cmd CreateBundleCommand) (order.Bundle, error) {
	if err := cmd.Validate(); err != nil {
		return order.Bundle{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Bundle{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Bundle{}, err
	}

	bundle, err := o.AddBundle(cmd.Weight(), cmd.Items())
	if err != nil {
		return order.Bundle{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Bundle{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return order.Bundle{}, err
	}
	return bundle, nil
}
