package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies release, picking, completion and
// cancellation steps. Transition rules live on the order.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns the status the order ended in.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	switch cmd.Action() {
	case ActionRelease:
		err = o.Release()
	case ActionStartPicking:
		err = o.StartPicking()
	case ActionComplete:
		err = o.Complete()
	case ActionCancel:
		err = o.Cancel()
	}
	if err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}
	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}
	return o.Status(), nil
}
