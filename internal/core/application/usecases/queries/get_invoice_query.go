package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

const (
	// WalkInCustomer names the buyer when the order has no known customer.
	WalkInCustomer = "Cliente Mostrador"
	// NoAddress is printed when neither the order nor the customer has an address.
	NoAddress = "Sin Dirección"
)

// GetInvoiceQuery builds the commercial invoice of an order.
type GetInvoiceQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetInvoiceQuery(orderID string) (GetInvoiceQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetInvoiceQuery{}, ErrOrderIDIsRequired
	}
	return GetInvoiceQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

func (q GetInvoiceQuery) OrderID() string { return q.orderID }

type InvoiceLine struct {
	ProductID   string          `json:"productId"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

type Invoice struct {
	OrderID              string          `json:"orderId"`
	InvoiceRef           string          `json:"invoiceRef,omitempty"`
	Date                 time.Time       `json:"date"`
	Status               string          `json:"status"`
	CustomerName         string          `json:"customerName"`
	CustomerAddress      string          `json:"customerAddress"`
	AcceptedDocType      string          `json:"acceptedDocType"`
	PackingListValidated bool            `json:"packingListValidated"`
	Lines                []InvoiceLine   `json:"lines"`
	Total                decimal.Decimal `json:"total"`
}
