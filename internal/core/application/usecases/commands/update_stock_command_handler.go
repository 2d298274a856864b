package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// UpdateStockResult reports the new stock level and the order created by a
// customer withdrawal, if any.
type UpdateStockResult struct {
	Stock   int
	OrderID string
}

// UpdateStockCommandHandler applies stock movements. A withdrawal for a
// customer creates a pending sale order priced at cost times the sale markup,
// addressed to the chosen destination of that customer.
type UpdateStockCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewUpdateStockCommandHandler(uowFactory UoWFactory) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h *UpdateStockCommandHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (UpdateStockResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateStockResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateStockResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return UpdateStockResult{}, err
	}

	if cmd.Movement() == MovementAdd {
		err = p.Restock(cmd.Quantity())
	} else {
		err = p.Withdraw(cmd.Quantity())
	}
	if err != nil {
		return UpdateStockResult{}, err
	}

	result := UpdateStockResult{Stock: p.Stock()}

	if cmd.CreatesOrder() {
		c, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
		if err != nil {
			return UpdateStockResult{}, err
		}
		dest, err := c.Destination(cmd.DestinationID())
		if err != nil {
			return UpdateStockResult{}, err
		}

		line, err := kernel.NewLineItem(p.ID(), cmd.Quantity())
		if err != nil {
			return UpdateStockResult{}, err
		}

		orderRepo := uow.OrderRepository()
		id, err := orderRepo.NextID(ctx)
		if err != nil {
			return UpdateStockResult{}, err
		}

		o, err := order.NewSaleOrder(
			id,
			c.ID(),
			order.Destination{ID: dest.ID, Address: dest.Address},
			kernel.Items{line},
			p.SaleTotal(cmd.Quantity()),
			cmd.FreightPayer(),
			cmd.PreferredCarrierID(),
			h.now(),
		)
		if err != nil {
			return UpdateStockResult{}, err
		}
		if err = orderRepo.Add(ctx, o); err != nil {
			return UpdateStockResult{}, err
		}
		result.OrderID = o.ID()
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return UpdateStockResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateStockResult{}, err
	}

	return result, nil
}
