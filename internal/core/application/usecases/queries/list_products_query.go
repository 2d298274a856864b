package queries

import (
	"errors"

	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists the towel catalog with stock and prices.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ProductView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Family         string          `json:"family"`
	Type           string          `json:"type"`
	Dimensions     string          `json:"dimensions"`
	Weight         float64         `json:"weight"`
	LotNumber      string          `json:"lotNumber,omitempty"`
	ProductionDate string          `json:"productionDate,omitempty"`
	Specifications string          `json:"specifications,omitempty"`
	Stock          int             `json:"stock"`
	Cost           decimal.Decimal `json:"cost"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	SupplierID     string          `json:"supplierId"`
	Aisle          string          `json:"aisle"`
}
