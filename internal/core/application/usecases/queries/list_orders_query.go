package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists sale and purchase orders, optionally only those in
// one status.
//
// Example:
//
//	query, err := NewListOrdersQuery("invoiced")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status for all orders.
func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if strings.TrimSpace(status) == "" {
		return q, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.status = parsed
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status is order.Unknown when the query is not filtered.
func (q ListOrdersQuery) Status() order.Status { return q.status }

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID                   string          `json:"id"`
	Kind                 string          `json:"type"`
	PartyID              string          `json:"partyId"`
	PartyName            string          `json:"partyName"`
	Date                 time.Time       `json:"date"`
	Status               string          `json:"status"`
	Total                decimal.Decimal `json:"total"`
	DestinationAddress   string          `json:"destinationAddress"`
	AddressStatus        string          `json:"addressStatus"`
	FreightPayer         string          `json:"freightPayer"`
	PackingListValidated bool            `json:"packingListValidated"`
	InvoiceRef           string          `json:"invoiceRef,omitempty"`
	RouteID              string          `json:"assignedRouteId,omitempty"`
	BundleCount          int             `json:"bundleCount"`
}
