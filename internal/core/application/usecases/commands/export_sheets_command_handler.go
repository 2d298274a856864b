package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/ports"
)

// Inbound lot states as the spreadsheet shows them.
const (
	SheetLotStored  = "Almacenado"
	SheetLotPending = "Pendiente"
)

// ExportSheetsCommandHandler reads a consistent snapshot and posts it to the
// spreadsheet webhook once. A failed post is returned as is.
type ExportSheetsCommandHandler struct {
	uowFactory UoWFactory
	exporter   ports.SheetExporter
}

func NewExportSheetsCommandHandler(uowFactory UoWFactory, exporter ports.SheetExporter) ExportSheetsCommandHandler {
	return ExportSheetsCommandHandler{uowFactory: uowFactory, exporter: exporter}
}

func (h *ExportSheetsCommandHandler) Handle(ctx context.Context, cmd ExportSheetsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payload, err := h.snapshot(ctx)
	if err != nil {
		return err
	}

	if err = h.exporter.Export(ctx, payload); err != nil {
		return fmt.Errorf("export to sheets: %w", err)
	}
	return nil
}

func (h *ExportSheetsCommandHandler) snapshot(ctx context.Context) (ports.SheetPayload, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.SheetPayload{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := uow.ProductRepository().GetAll(ctx)
	if err != nil {
		return ports.SheetPayload{}, err
	}
	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return ports.SheetPayload{}, err
	}
	lots, err := uow.LotRepository().GetAll(ctx)
	if err != nil {
		return ports.SheetPayload{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.SheetPayload{}, err
	}

	return ports.SheetPayload{
		Inventory: inventoryRows(products),
		Orders:    orderRows(orders),
		Inbound:   inboundRows(lots),
	}, nil
}

func inventoryRows(products []*product.Product) []ports.SheetInventoryRow {
	rows := make([]ports.SheetInventoryRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ports.SheetInventoryRow{
			ID:       p.ID(),
			Name:     p.Name(),
			Family:   p.Attributes().Family,
			Stock:    p.Stock(),
			Cost:     p.Cost().InexactFloat64(),
			Location: p.Aisle(),
		})
	}
	return rows
}

func orderRows(orders []*order.Order) []ports.SheetOrderRow {
	rows := make([]ports.SheetOrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, ports.SheetOrderRow{
			ID:       o.ID(),
			Date:     o.IssuedAt().Format("2006-01-02"),
			Customer: o.PartyID(),
			Total:    o.Total().InexactFloat64(),
			Status:   o.Status().String(),
		})
	}
	return rows
}

func inboundRows(lots []*inbound.Lot) []ports.SheetInboundRow {
	rows := make([]ports.SheetInboundRow, 0, len(lots))
	for _, l := range lots {
		status := SheetLotPending
		if l.Status() == inbound.Stored {
			status = SheetLotStored
		}
		rows = append(rows, ports.SheetInboundRow{
			ID:         l.ID(),
			Supplier:   l.SupplierID(),
			Date:       l.ArrivalDate(),
			Status:     status,
			TotalItems: l.Items().TotalQuantity(),
		})
	}
	return rows
}
