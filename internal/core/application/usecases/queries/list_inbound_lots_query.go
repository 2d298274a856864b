package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrListInboundLotsQueryIsNotConstructed = errors.New(
	"ListInboundLotsQuery must be created via NewListInboundLotsQuery constructor",
)

// ListInboundLotsQuery lists import lots with their receiving status.
type ListInboundLotsQuery struct {
	guard guard.ConstructorGuard
}

func NewListInboundLotsQuery() ListInboundLotsQuery {
	return ListInboundLotsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListInboundLotsQuery) Validate() error {
	return q.guard.Validate(ErrListInboundLotsQueryIsNotConstructed)
}

type InboundLotView struct {
	ID           string     `json:"id"`
	SupplierID   string     `json:"supplierId"`
	SupplierName string     `json:"supplierName"`
	ArrivalDate  string     `json:"arrivalDate"`
	Status       string     `json:"status"`
	Items        []LineItem `json:"items"`
	TotalUnits   int        `json:"totalUnits"`
}
