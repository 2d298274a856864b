package commands

import "context"

// OverrideAddressCommandHandler replaces an order's address manually.
type OverrideAddressCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewOverrideAddressCommandHandler(uowFactory OrderUoWFactory) OverrideAddressCommandHandler {
	return OverrideAddressCommandHandler{uowFactory: uowFactory}
}

func (h *OverrideAddressCommandHandler) Handle(ctx context.Context, cmd OverrideAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.OverrideAddress(cmd.NewAddress()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
