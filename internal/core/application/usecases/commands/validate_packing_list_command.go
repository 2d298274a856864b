package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var ErrValidatePackingListCommandIsNotConstructed = errors.New(
	"ValidatePackingListCommand must be created via NewValidatePackingListCommand constructor",
)

// ValidatePackingListCommand asks to lock an order's packing list.
// Acknowledged confirms the operator has seen the compliance warnings.
type ValidatePackingListCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	acknowledged bool

	guard guard.ConstructorGuard
}

func NewValidatePackingListCommand(orderID string, acknowledged bool) (ValidatePackingListCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ValidatePackingListCommand{}, ErrOrderIDIsRequired
	}
	return ValidatePackingListCommand{
		orderID:      orderID,
		acknowledged: acknowledged,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ValidatePackingListCommand) Validate() error {
	return c.guard.Validate(ErrValidatePackingListCommandIsNotConstructed)
}

func (c ValidatePackingListCommand) OrderID() string { return c.orderID }
func (c ValidatePackingListCommand) Acknowledged() bool { return c.acknowledged }
