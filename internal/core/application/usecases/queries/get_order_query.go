package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// GetOrderQuery reads one order with its items, bundles and address history.
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetOrderQuery{}, ErrOrderIDIsRequired
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() string { return q.orderID }

type BundleView struct {
	ID     string     `json:"id"`
	Number int        `json:"number"`
	Weight float64    `json:"weight"`
	Items  []LineItem `json:"items"`
}

type AddressChangeView struct {
	Date       time.Time `json:"date"`
	EmailID    string    `json:"emailId"`
	OldAddress string    `json:"oldAddress"`
	NewAddress string    `json:"newAddress"`
}

// OrderDetail is the full read model of an order.
type OrderDetail struct {
	OrderSummary
	Items              []LineItem          `json:"items"`
	DestinationID      string              `json:"destinationId"`
	PreferredCarrierID string              `json:"preferredCarrierId,omitempty"`
	Bundles            []BundleView        `json:"bundles"`
	AddressHistory     []AddressChangeView `json:"addressHistory"`
}
