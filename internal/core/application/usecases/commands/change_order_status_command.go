package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// OrderAction is an operator step on the fulfilment state machine that
// needs no further input.
type OrderAction string

const (
	ActionRelease      OrderAction = "release"
	ActionStartPicking OrderAction = "start_picking"
	ActionComplete     OrderAction = "complete"
	ActionCancel       OrderAction = "cancel"
)

func (a OrderAction) Validate() error {
	switch a {
	case ActionRelease, ActionStartPicking, ActionComplete, ActionCancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order action is invalid", fmt.Errorf("%q is not supported", string(a)))
	}
}

// ChangeOrderStatusCommand moves an order one step along its lifecycle.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand("SO-1003", ActionRelease)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID string
	action  OrderAction

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID string, action OrderAction) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() string { return c.orderID }
func (c ChangeOrderStatusCommand) Action() OrderAction { return c.action }

func (c *ChangeOrderStatusCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setAction(action OrderAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}
