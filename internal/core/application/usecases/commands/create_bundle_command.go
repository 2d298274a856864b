package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateBundleCommandIsNotConstructed = errors.New(
		"CreateBundleCommand must be created via NewCreateBundleCommand constructor",
	)
	ErrWeightIsInvalid       = errors.New("bundle weight must not be negative")
	ErrBundleItemsIsRequired = errors.New("bundle needs at least one item")
)

// CreateBundleCommand adds a physical package to an order's packing list.
type CreateBundleCommand struct { //nolint:recvcheck //using for validation
	orderID string
	weight  float64
	items   kernel.Items

	guard guard.ConstructorGuard
}

func NewCreateBundleCommand(orderID string, weight float64, items kernel.Items) (CreateBundleCommand, error) {
	cmd := CreateBundleCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWeight(weight),
		cmd.setItems(items),
	); err != nil {
		return CreateBundleCommand{}, err
	}
	return cmd, nil
}

func (c CreateBundleCommand) Validate() error {
	return c.guard.Validate(ErrCreateBundleCommandIsNotConstructed)
}

func (c CreateBundleCommand) OrderID() string { return c.orderID }
func (c CreateBundleCommand) Weight() float64 { return c.weight }
func (c CreateBundleCommand) Items() kernel.Items { return c.items.Clone() }

func (c *CreateBundleCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *CreateBundleCommand) setWeight(weight float64) error {
	if weight < 0 {
		return ErrWeightIsInvalid
	}
	c.weight = weight
	return nil
}

func (c *CreateBundleCommand) setItems(items kernel.Items) error {
	if len(items) == 0 {
		return ErrBundleItemsIsRequired
	}
	c.items = items.Clone()
	return nil
}
