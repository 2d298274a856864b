package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrUpdateStockCommandIsNotConstructed = errors.New(
		"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
	)
	ErrProductIDIsRequired     = errors.New("product id is required")
	ErrQuantityIsInvalid       = errors.New("quantity must be greater than 0")
	ErrMovementIsInvalid       = errors.New("movement must be add or remove")
	ErrDestinationIsRequired   = errors.New("destination is required when withdrawing for a customer")
	ErrCustomerOnlyForWithdraw = errors.New("customer can only be set when removing stock")
)

// Movement is the direction of a stock update.
type Movement string

const (
	MovementAdd    Movement = "add"
	MovementRemove Movement = "remove"
)

// UpdateStockCommand adds or removes units of a product. Removing units for a
// customer turns the withdrawal into a pending sale order.
//
// Example:
//
//	cmd, err := NewUpdateStockCommand("70LVL2GMC7200", 500, MovementRemove,
//	    "cust1", "dest1_2", order.FreightClient, "")
//	if err != nil {
//	    return fmt.Errorf("invalid stock update: %w", err)
//	}
//	res, err := handler.Handle(ctx, cmd)
//	fmt.Printf("stock is now %d, order %s\n", res.Stock, res.OrderID)
type UpdateStockCommand struct { //nolint:recvcheck //using for validation
	productID          string
	quantity           int
	movement           Movement
	customerID         string
	destinationID      string
	freightPayer       order.FreightPayer
	preferredCarrierID string

	guard guard.ConstructorGuard
}

// NewUpdateStockCommand validates the request. The freight payer defaults to
// the client when empty.
func NewUpdateStockCommand(
	productID string,
	quantity int,
	movement Movement,
	customerID string,
	destinationID string,
	freightPayer order.FreightPayer,
	preferredCarrierID string,
) (UpdateStockCommand, error) {
	cmd := UpdateStockCommand{
		customerID:         strings.TrimSpace(customerID),
		destinationID:      strings.TrimSpace(destinationID),
		preferredCarrierID: strings.TrimSpace(preferredCarrierID),
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setMovement(movement),
		cmd.setFreightPayer(freightPayer),
		cmd.checkCustomer(),
	); err != nil {
		return UpdateStockCommand{}, err
	}

	return cmd, nil
}

func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

func (c UpdateStockCommand) ProductID() string { return c.productID }
func (c UpdateStockCommand) Quantity() int { return c.quantity }
func (c UpdateStockCommand) Movement() Movement { return c.movement }
func (c UpdateStockCommand) CustomerID() string { return c.customerID }
func (c UpdateStockCommand) DestinationID() string { return c.destinationID }
func (c UpdateStockCommand) FreightPayer() order.FreightPayer { return c.freightPayer }
func (c UpdateStockCommand) PreferredCarrierID() string { return c.preferredCarrierID }

// CreatesOrder reports whether the update is a withdrawal for a customer.
func (c UpdateStockCommand) CreatesOrder() bool {
	return c.movement == MovementRemove && c.customerID != ""
}

func (c *UpdateStockCommand) setProductID(productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ErrProductIDIsRequired
	}
	c.productID = productID
	return nil
}

func (c *UpdateStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *UpdateStockCommand) setMovement(movement Movement) error {
	if movement != MovementAdd && movement != MovementRemove {
		return ErrMovementIsInvalid
	}
	c.movement = movement
	return nil
}

func (c *UpdateStockCommand) setFreightPayer(payer order.FreightPayer) error {
	if payer == "" {
		payer = order.FreightClient
	}
	if err := payer.Validate(); err != nil {
		return err
	}
	c.freightPayer = payer
	return nil
}

func (c *UpdateStockCommand) checkCustomer() error {
	if c.customerID == "" {
		return nil
	}
	if c.movement == MovementAdd {
		return ErrCustomerOnlyForWithdraw
	}
	if c.destinationID == "" {
		return ErrDestinationIsRequired
	}
	return nil
}
