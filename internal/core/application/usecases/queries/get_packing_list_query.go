package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var ErrGetPackingListQueryIsNotConstructed = errors.New(
	"GetPackingListQuery must be created via NewGetPackingListQuery constructor",
)

// GetPackingListQuery derives the packing list document of an order from its
// bundles. Nothing is stored; the document is rebuilt on every read.
type GetPackingListQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetPackingListQuery(orderID string) (GetPackingListQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetPackingListQuery{}, ErrOrderIDIsRequired
	}
	return GetPackingListQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackingListQuery) Validate() error {
	return q.guard.Validate(ErrGetPackingListQueryIsNotConstructed)
}

func (q GetPackingListQuery) OrderID() string { return q.orderID }

// PackingListRow is one product line of one bundle.
type PackingListRow struct {
	BundleID     string  `json:"bundleId"`
	BundleNumber int     `json:"bundleNumber"`
	BundleWeight float64 `json:"bundleWeight"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
}

type PackingList struct {
	OrderID              string           `json:"orderId"`
	CustomerName         string           `json:"customerName"`
	DestinationAddress   string           `json:"destinationAddress"`
	PackingListValidated bool             `json:"packingListValidated"`
	Rows                 []PackingListRow `json:"rows"`
	TotalBundles         int              `json:"totalBundles"`
	TotalWeight          float64          `json:"totalWeight"`
	TotalUnits           int              `json:"totalUnits"`
}
