package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var ErrOverrideAddressCommandIsNotConstructed = errors.New(
	"OverrideAddressCommand must be created via NewOverrideAddressCommand constructor",
)

// OverrideAddressCommand sets a delivery address typed in by an operator.
type OverrideAddressCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	newAddress string

	guard guard.ConstructorGuard
}

func NewOverrideAddressCommand(orderID, newAddress string) (OverrideAddressCommand, error) {
	cmd := OverrideAddressCommand{
		orderID:    strings.TrimSpace(orderID),
		newAddress: strings.TrimSpace(newAddress),
		guard:      guard.NewConstructorGuard(),
	}

	var errOrder, errAddress error
	if cmd.orderID == "" {
		errOrder = ErrOrderIDIsRequired
	}
	if cmd.newAddress == "" {
		errAddress = ErrNewAddressIsRequired
	}
	if err := errors.Join(errOrder, errAddress); err != nil {
		return OverrideAddressCommand{}, err
	}
	return cmd, nil
}

func (c OverrideAddressCommand) Validate() error {
	return c.guard.Validate(ErrOverrideAddressCommandIsNotConstructed)
}

func (c OverrideAddressCommand) OrderID() string { return c.orderID }
func (c OverrideAddressCommand) NewAddress() string { return c.newAddress }
