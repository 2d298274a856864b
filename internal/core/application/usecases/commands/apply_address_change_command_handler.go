package commands

import (
	"context"
	"time"
)

// ApplyAddressChangeCommandHandler overwrites an order's delivery address
// with the one confirmed from an email and records the change in the
// history. Reapplying the same address is a no-op and reports false.
type ApplyAddressChangeCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewApplyAddressChangeCommandHandler(uowFactory OrderUoWFactory) ApplyAddressChangeCommandHandler {
	return ApplyAddressChangeCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h *ApplyAddressChangeCommandHandler) Handle(ctx context.Context, cmd ApplyAddressChangeCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	changed, err := o.ApplyAddressChange(cmd.NewAddress(), cmd.EmailID(), h.now())
	if err != nil || !changed {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
