package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListInboundLotsQueryHandler struct {
	db *gorm.DB
}

func NewListInboundLotsQueryHandler(db *gorm.DB) ListInboundLotsQueryHandler {
	return ListInboundLotsQueryHandler{db: db}
}

// Handle lists lots by arrival date, lots still at customs first on ties.
func (h ListInboundLotsQueryHandler) Handle(ctx context.Context, query ListInboundLotsQuery) ([]InboundLotView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT l.id, l.supplier_id, COALESCE(s.name, l.supplier_id), l.arrival_date, l.status, l.items
		FROM inbound_lots l
		LEFT JOIN suppliers s ON s.id = l.supplier_id
		ORDER BY l.arrival_date, CASE l.status WHEN 'customs' THEN 0 WHEN 'receiving' THEN 1 ELSE 2 END, l.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lots := make([]InboundLotView, 0)
	for rows.Next() {
		var lot InboundLotView
		var items lineItems
		if err := rows.Scan(&lot.ID, &lot.SupplierID, &lot.SupplierName, &lot.ArrivalDate, &lot.Status, &items); err != nil {
			return nil, err
		}
		lot.Items = items
		for _, item := range items {
			lot.TotalUnits += item.Quantity
		}
		lots = append(lots, lot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lots, nil
}
