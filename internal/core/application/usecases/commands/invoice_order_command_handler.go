package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// InvoiceOrderCommandHandler invoices an order and returns the issued
// reference. An order whose packing list is not validated is rejected with
// a conflict and stays untouched.
type InvoiceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	newRef     func() string
}

func NewInvoiceOrderCommandHandler(uowFactory OrderUoWFactory) InvoiceOrderCommandHandler {
	return InvoiceOrderCommandHandler{uowFactory: uowFactory, newRef: kernel.NewInvoiceReference}
}

func (h *InvoiceOrderCommandHandler) Handle(ctx context.Context, cmd InvoiceOrderCommand) (string, error) {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	if err = o.Invoice(h.newRef()); err != nil {
		return "", err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return o.InvoiceRef(), nil
}
