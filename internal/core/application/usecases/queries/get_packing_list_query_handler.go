package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPackingListQueryHandler struct {
	db *gorm.DB
}

func NewGetPackingListQueryHandler(db *gorm.DB) GetPackingListQueryHandler {
	return GetPackingListQueryHandler{db: db}
}

// Handle fails with a conflict while the order has no bundles.
func (h GetPackingListQueryHandler) Handle(ctx context.Context, query GetPackingListQuery) (PackingList, error) {
	if err := query.Validate(); err != nil {
		return PackingList{}, err
	}

	doc := PackingList{OrderID: query.OrderID()}
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(c.name, ''), o.destination_address, o.packing_list_validated
		FROM orders o
		LEFT JOIN customers c ON o.kind = 'sale' AND c.id = o.party_id
		WHERE o.id = ?`, query.OrderID()).Row().Scan(
		&doc.CustomerName, &doc.DestinationAddress, &doc.PackingListValidated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PackingList{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return PackingList{}, err
	}

	bundles, err := loadBundles(ctx, h.db, query.OrderID())
	if err != nil {
		return PackingList{}, err
	}
	if len(bundles) == 0 {
		return PackingList{}, errs.NewConflictError(order.ErrNoBundles)
	}

	names, err := productNames(ctx, h.db)
	if err != nil {
		return PackingList{}, err
	}

	doc.Rows = make([]PackingListRow, 0)
	for _, b := range bundles {
		doc.TotalBundles++
		doc.TotalWeight += b.Weight
		for _, item := range b.Items {
			doc.TotalUnits += item.Quantity
			doc.Rows = append(doc.Rows, PackingListRow{
				BundleID:     b.ID,
				BundleNumber: b.Number,
				BundleWeight: b.Weight,
				ProductID:    item.ProductID,
				ProductName:  nameOr(names, item.ProductID),
				Quantity:     item.Quantity,
			})
		}
	}
	return doc, nil
}

func productNames(ctx context.Context, db *gorm.DB) (map[string]string, error) {
	rows, err := db.WithContext(ctx).Raw(`SELECT id, name FROM products`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// nameOr falls back to the product id for products no longer in the catalog.
func nameOr(names map[string]string, productID string) string {
	if name, ok := names[productID]; ok {
		return name
	}
	return productID
}
