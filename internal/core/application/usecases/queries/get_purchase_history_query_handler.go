package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPurchaseHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetPurchaseHistoryQueryHandler(db *gorm.DB) GetPurchaseHistoryQueryHandler {
	return GetPurchaseHistoryQueryHandler{db: db}
}

// Handle aggregates the purchase order lines of the supplier per product,
// largest quantity first. Cancelled purchase orders are left out.
func (h GetPurchaseHistoryQueryHandler) Handle(ctx context.Context, query GetPurchaseHistoryQuery) (PurchaseHistory, error) {
	if err := query.Validate(); err != nil {
		return PurchaseHistory{}, err
	}

	db := h.db.WithContext(ctx)
	history := PurchaseHistory{SupplierID: query.SupplierID()}

	err := db.Raw(`
		SELECT s.name,
			(SELECT COUNT(*) FROM orders o
			 WHERE o.kind = 'purchase' AND o.party_id = s.id AND o.status <> 'cancelled')
		FROM suppliers s
		WHERE s.id = ?`, query.SupplierID()).Row().Scan(&history.SupplierName, &history.OrderCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PurchaseHistory{}, errs.NewObjectNotFoundError("supplier", query.SupplierID())
		}
		return PurchaseHistory{}, err
	}

	rows, err := db.Raw(`
		SELECT item->>'productId' AS product_id,
			COALESCE(p.name, item->>'productId') AS product_name,
			SUM((item->>'quantity')::int) AS total_quantity
		FROM orders o
		CROSS JOIN LATERAL jsonb_array_elements(o.items) AS item
		LEFT JOIN products p ON p.id = item->>'productId'
		WHERE o.kind = 'purchase' AND o.party_id = ? AND o.status <> 'cancelled'
		GROUP BY item->>'productId', p.name
		ORDER BY total_quantity DESC, product_id`, query.SupplierID()).Rows()
	if err != nil {
		return PurchaseHistory{}, err
	}
	defer rows.Close()

	history.Products = make([]PurchasedProduct, 0)
	for rows.Next() {
		var p PurchasedProduct
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.TotalQuantity); err != nil {
			return PurchaseHistory{}, err
		}
		history.Products = append(history.Products, p)
	}
	if err := rows.Err(); err != nil {
		return PurchaseHistory{}, err
	}

	return history, nil
}
