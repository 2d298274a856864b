package queries

import (
	"context"

	"logistics/internal/core/domain/model/product"

	"gorm.io/gorm"
)

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle returns the catalog ordered by family and name.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, name, family, type, dimensions, weight,
			lot_number, production_date, specifications,
			stock, cost, supplier_id, aisle
		FROM products
		ORDER BY family, name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var p ProductView
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Family, &p.Type, &p.Dimensions, &p.Weight,
			&p.LotNumber, &p.ProductionDate, &p.Specifications,
			&p.Stock, &p.Cost, &p.SupplierID, &p.Aisle,
		); err != nil {
			return nil, err
		}
		p.SalePrice = p.Cost.Mul(product.SaleMarkup)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
