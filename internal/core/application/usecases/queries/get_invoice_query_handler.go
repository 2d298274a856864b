package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInvoiceQueryHandler prices every line at the sale markup over the current
// unit cost. The total is the one stored on the order.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (Invoice, error) {
	if err := query.Validate(); err != nil {
		return Invoice{}, err
	}

	db := h.db.WithContext(ctx)
	inv := Invoice{OrderID: query.OrderID()}
	var items lineItems
	var destinationAddress, mainAddress, docType string

	err := db.Raw(`
		SELECT o.invoice_ref, o.issued_at, o.status, o.total, o.packing_list_validated, o.items,
			o.destination_address, COALESCE(c.name, ''), COALESCE(c.main_address, ''),
			COALESCE(c.accepted_doc_type, '')
		FROM orders o
		LEFT JOIN customers c ON o.kind = 'sale' AND c.id = o.party_id
		WHERE o.id = ?`, query.OrderID()).Row().Scan(
		&inv.InvoiceRef, &inv.Date, &inv.Status, &inv.Total, &inv.PackingListValidated, &items,
		&destinationAddress, &inv.CustomerName, &mainAddress,
		&docType,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Invoice{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return Invoice{}, err
	}

	if inv.CustomerName == "" {
		inv.CustomerName = WalkInCustomer
	}
	inv.CustomerAddress = firstNonBlank(destinationAddress, mainAddress, NoAddress)
	inv.AcceptedDocType = firstNonBlank(docType, string(customer.DocInvoice))

	costs, err := h.productCosts(ctx)
	if err != nil {
		return Invoice{}, err
	}

	inv.Lines = make([]InvoiceLine, 0, len(items))
	for _, item := range items {
		line := InvoiceLine{ProductID: item.ProductID, Description: item.ProductID, Quantity: item.Quantity, UnitPrice: decimal.Zero}
		if p, ok := costs[item.ProductID]; ok {
			line.Description = p.name
			line.UnitPrice = p.cost.Mul(product.SaleMarkup)
		}
		line.Amount = line.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		inv.Lines = append(inv.Lines, line)
	}
	return inv, nil
}

type pricedProduct struct {
	name string
	cost decimal.Decimal
}

func (h GetInvoiceQueryHandler) productCosts(ctx context.Context) (map[string]pricedProduct, error) {
	rows, err := h.db.WithContext(ctx).Raw(`SELECT id, name, cost FROM products`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	costs := make(map[string]pricedProduct)
	for rows.Next() {
		var id string
		var p pricedProduct
		if err := rows.Scan(&id, &p.name, &p.cost); err != nil {
			return nil, err
		}
		costs[id] = p
	}
	return costs, rows.Err()
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
