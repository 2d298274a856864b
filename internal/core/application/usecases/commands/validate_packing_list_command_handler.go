package commands

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/order"
)

// ValidatePackingListCommandHandler runs the packing-list validation against
// the customer's compliance specs.
//
// The order is only written when the lock is actually set. Unacknowledged
// warnings and repeated locks leave storage untouched and publish nothing.
type ValidatePackingListCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewValidatePackingListCommandHandler(uowFactory OrderUoWFactory) ValidatePackingListCommandHandler {
	return ValidatePackingListCommandHandler{uowFactory: uowFactory}
}

func (h *ValidatePackingListCommandHandler) Handle(
	ctx context.Context,
	cmd ValidatePackingListCommand,
) (order.PackingValidation, error) {
	if err := cmd.Validate(); err != nil {
		return order.PackingValidation{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.PackingValidation{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.PackingValidation{}, err
	}
	wasLocked := o.IsPackingListValidated()

	specs := customer.DefaultSpecs()
	if o.Kind() == order.Sale {
		c, err := uow.CustomerRepository().Get(ctx, o.PartyID())
		if err != nil {
			return order.PackingValidation{}, err
		}
		specs = c.Specs()
	}

	result, err := o.LockPackingList(specs, cmd.Acknowledged())
	if err != nil {
		return order.PackingValidation{}, err
	}
	if wasLocked || !result.Locked {
		return result, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.PackingValidation{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return order.PackingValidation{}, err
	}
	return result, nil
}
