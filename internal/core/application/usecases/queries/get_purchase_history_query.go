package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetPurchaseHistoryQueryIsNotConstructed = errors.New(
		"GetPurchaseHistoryQuery must be created via NewGetPurchaseHistoryQuery constructor",
	)
	ErrSupplierIDIsRequired = errors.New("supplier id is required")
)

// GetPurchaseHistoryQuery totals what was bought from one supplier.
type GetPurchaseHistoryQuery struct {
	supplierID string

	guard guard.ConstructorGuard
}

func NewGetPurchaseHistoryQuery(supplierID string) (GetPurchaseHistoryQuery, error) {
	supplierID = strings.TrimSpace(supplierID)
	if supplierID == "" {
		return GetPurchaseHistoryQuery{}, ErrSupplierIDIsRequired
	}
	return GetPurchaseHistoryQuery{supplierID: supplierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPurchaseHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseHistoryQueryIsNotConstructed)
}

func (q GetPurchaseHistoryQuery) SupplierID() string { return q.supplierID }

type PurchasedProduct struct {
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	TotalQuantity int    `json:"totalQuantity"`
}

type PurchaseHistory struct {
	SupplierID   string             `json:"supplierId"`
	SupplierName string             `json:"supplierName"`
	OrderCount   int                `json:"orderCount"`
	Products     []PurchasedProduct `json:"products"`
}
