package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrStockIsInvalid        = errors.New("stock must not be negative")
	ErrCostIsInvalid         = errors.New("cost must not be negative")
)

// Placeholders used when a new product is registered with partial data.
const (
	DefaultFamily = "General"
	DefaultType   = "Estándar"
	DefaultAisle  = "Pendiente"
)

// CreateProductCommand registers a towel in the catalog. Missing family,
// type and aisle get placeholders; a missing id or lot number is generated.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID  string
	name       string
	attributes product.Attributes
	stock      int
	cost       decimal.Decimal
	supplierID string
	aisle      string

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID string,
	name string,
	attrs product.Attributes,
	stock int,
	cost decimal.Decimal,
	supplierID string,
	aisle string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		productID:  strings.TrimSpace(productID),
		supplierID: strings.TrimSpace(supplierID),
		aisle:      strings.TrimSpace(aisle),
		attributes: attrs,
		guard:      guard.NewConstructorGuard(),
	}
	if cmd.productID == "" {
		cmd.productID = kernel.NewReference("PROD")
	}
	if cmd.aisle == "" {
		cmd.aisle = DefaultAisle
	}
	if strings.TrimSpace(cmd.attributes.Family) == "" {
		cmd.attributes.Family = DefaultFamily
	}
	if strings.TrimSpace(cmd.attributes.Type) == "" {
		cmd.attributes.Type = DefaultType
	}
	if strings.TrimSpace(cmd.attributes.LotNumber) == "" {
		cmd.attributes.LotNumber = kernel.NewReference("LOT")
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setStock(stock),
		cmd.setCost(cost),
	); err != nil {
		return CreateProductCommand{}, err
	}
	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() string { return c.productID }
func (c CreateProductCommand) Name() string { return c.name }
func (c CreateProductCommand) Attributes() product.Attributes { return c.attributes }
func (c CreateProductCommand) Stock() int { return c.stock }
func (c CreateProductCommand) Cost() decimal.Decimal { return c.cost }
func (c CreateProductCommand) SupplierID() string { return c.supplierID }
func (c CreateProductCommand) Aisle() string { return c.aisle }

func (c *CreateProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrProductNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}
	c.stock = stock
	return nil
}

func (c *CreateProductCommand) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return ErrCostIsInvalid
	}
	c.cost = cost
	return nil
}
