package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var (
	ErrApplyAddressChangeCommandIsNotConstructed = errors.New(
		"ApplyAddressChangeCommand must be created via NewApplyAddressChangeCommand constructor",
	)
	ErrNewAddressIsRequired = errors.New("new address is required")
)

// ApplyAddressChangeCommand confirms an address change extracted from an
// email. EmailID identifies the source message in the address history.
type ApplyAddressChangeCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	newAddress string
	emailID    string

	guard guard.ConstructorGuard
}

func NewApplyAddressChangeCommand(orderID, newAddress, emailID string) (ApplyAddressChangeCommand, error) {
	cmd := ApplyAddressChangeCommand{
		orderID:    strings.TrimSpace(orderID),
		newAddress: strings.TrimSpace(newAddress),
		emailID:    strings.TrimSpace(emailID),
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
		return ApplyAddressChangeCommand{}, err
	}
	return cmd, nil
}

func (c ApplyAddressChangeCommand) Validate() error {
	return c.guard.Validate(ErrApplyAddressChangeCommandIsNotConstructed)
}

func (c ApplyAddressChangeCommand) OrderID() string { return c.orderID }
func (c ApplyAddressChangeCommand) NewAddress() string { return c.newAddress }
func (c ApplyAddressChangeCommand) EmailID() string { return c.emailID }
