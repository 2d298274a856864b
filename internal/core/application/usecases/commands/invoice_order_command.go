package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var ErrInvoiceOrderCommandIsNotConstructed = errors.New(
	"InvoiceOrderCommand must be created via NewInvoiceOrderCommand constructor",
)

// InvoiceOrderCommand issues the invoice of a packed order.
type InvoiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewInvoiceOrderCommand(orderID string) (InvoiceOrderCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return InvoiceOrderCommand{}, ErrOrderIDIsRequired
	}
	return InvoiceOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c InvoiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrInvoiceOrderCommandIsNotConstructed)
}

func (c InvoiceOrderCommand) OrderID() string { return c.orderID }
