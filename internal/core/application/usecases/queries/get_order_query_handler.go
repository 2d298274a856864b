package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	db := h.db.WithContext(ctx)
	var detail OrderDetail
	var items lineItems

	err := db.Raw(`
		SELECT
			o.id, o.kind, o.party_id, COALESCE(c.name, s.name, ''),
			o.issued_at, o.status, o.total, o.destination_address,
			o.address_status, o.freight_payer, o.packing_list_validated,
			o.invoice_ref, o.route_id,
			(SELECT COUNT(*) FROM order_bundles b WHERE b.order_id = o.id),
			o.items, o.destination_id, o.preferred_carrier_id
		FROM orders o
		LEFT JOIN customers c ON o.kind = 'sale' AND c.id = o.party_id
		LEFT JOIN suppliers s ON o.kind = 'purchase' AND s.id = o.party_id
		WHERE o.id = ?`, query.OrderID()).Row().Scan(
		&detail.ID, &detail.Kind, &detail.PartyID, &detail.PartyName,
		&detail.Date, &detail.Status, &detail.Total, &detail.DestinationAddress,
		&detail.AddressStatus, &detail.FreightPayer, &detail.PackingListValidated,
		&detail.InvoiceRef, &detail.RouteID,
		&detail.BundleCount,
		&items, &detail.DestinationID, &detail.PreferredCarrierID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetail{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderDetail{}, err
	}
	detail.Items = items

	bundles, err := loadBundles(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderDetail{}, err
	}
	detail.Bundles = bundles

	rows, err := db.Raw(`
		SELECT changed_at, email_id, old_address, new_address
		FROM order_address_changes
		WHERE order_id = ?
		ORDER BY seq`, query.OrderID()).Rows()
	if err != nil {
		return OrderDetail{}, err
	}
	defer rows.Close()

	detail.AddressHistory = make([]AddressChangeView, 0)
	for rows.Next() {
		var change AddressChangeView
		if err := rows.Scan(&change.Date, &change.EmailID, &change.OldAddress, &change.NewAddress); err != nil {
			return OrderDetail{}, err
		}
		detail.AddressHistory = append(detail.AddressHistory, change)
	}
	if err := rows.Err(); err != nil {
		return OrderDetail{}, err
	}

	return detail, nil
}

// loadBundles reads the bundles of an order in number order.
func loadBundles(ctx context.Context, db *gorm.DB, orderID string) ([]BundleView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, number, weight, items
		FROM order_bundles
		WHERE order_id = ?
		ORDER BY number`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bundles := make([]BundleView, 0)
	for rows.Next() {
		var b BundleView
		var items lineItems
		if err := rows.Scan(&b.ID, &b.Number, &b.Weight, &items); err != nil {
			return nil, err
		}
		b.Items = items
		bundles = append(bundles, b)
	}
	return bundles, rows.Err()
}
