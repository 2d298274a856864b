package queries

import (
	"context"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order list, newest first. The party name
// comes from the customer for sales and from the supplier for purchases.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.kind,
			o.party_id,
			COALESCE(c.name, s.name, '') AS party_name,
			o.issued_at,
			o.status,
			o.total,
			o.destination_address,
			o.address_status,
			o.freight_payer,
			o.packing_list_validated,
			o.invoice_ref,
			o.route_id,
			(SELECT COUNT(*) FROM order_bundles b WHERE b.order_id = o.id) AS bundle_count
		FROM orders o
		LEFT JOIN customers c ON o.kind = 'sale' AND c.id = o.party_id
		LEFT JOIN suppliers s ON o.kind = 'purchase' AND s.id = o.party_id`
	var args []any
	if query.Status() != order.Unknown {
		sql += " WHERE o.status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY o.issued_at DESC, o.id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(
			&o.ID,
			&o.Kind,
			&o.PartyID,
			&o.PartyName,
			&o.Date,
			&o.Status,
			&o.Total,
			&o.DestinationAddress,
			&o.AddressStatus,
			&o.FreightPayer,
			&o.PackingListValidated,
			&o.InvoiceRef,
			&o.RouteID,
			&o.BundleCount,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
