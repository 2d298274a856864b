// Package product holds the towel catalog entry and its stock counter.
package product

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// ErrInsufficientStock is returned when a withdrawal exceeds the units on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

// SaleMarkup is applied to the unit cost to price sale orders and invoices.
var SaleMarkup = decimal.NewFromFloat(1.5)

// Attributes are the descriptive fields of a towel. They carry no invariants.
type Attributes struct {
	Family         string
	Type           string
	Dimensions     string
	Weight         float64
	LotNumber      string
	ProductionDate string
	Specifications string
}

type Product struct {
	id         string
	name       string
	attributes Attributes
	stock      int
	cost       decimal.Decimal
	supplierID string
	aisle      string

	isConstructed bool
}

func NewProduct(id, name string, attrs Attributes, stock int, cost decimal.Decimal, supplierID, aisle string) (*Product, error) {
	p := &Product{
		attributes:    attrs,
		supplierID:    strings.TrimSpace(supplierID),
		aisle:         strings.TrimSpace(aisle),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setStock(stock),
		p.setCost(cost),
		p.setWeight(attrs.Weight),
	); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(id, name string, attrs Attributes, stock int, cost decimal.Decimal, supplierID, aisle string) (*Product, error) {
	return NewProduct(id, name, attrs, stock, cost, supplierID, aisle)
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() string { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Attributes() Attributes { return p.attributes }
func (p *Product) Stock() int { return p.stock }
func (p *Product) Cost() decimal.Decimal { return p.cost }
func (p *Product) SupplierID() string { return p.supplierID }
func (p *Product) Aisle() string { return p.aisle }

// SalePrice is the unit price charged to customers.
func (p *Product) SalePrice() decimal.Decimal {
	return p.cost.Mul(SaleMarkup)
}

// SaleTotal prices qty units at the sale markup.
func (p *Product) SaleTotal(qty int) decimal.Decimal {
	return p.SalePrice().Mul(decimal.NewFromInt(int64(qty)))
}

// Restock adds received units.
func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", qty))
	}
	p.stock += qty
	return nil
}

// Withdraw removes units leaving the warehouse.
func (p *Product) Withdraw(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > p.stock {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", qty, 1, p.stock, ErrInsufficientStock)
	}
	p.stock -= qty
	return nil
}

// StoreAt records the location the product was last put away in.
func (p *Product) StoreAt(locationID string) {
	p.aisle = locationID
}

func (p *Product) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost is invalid", fmt.Errorf("%s is negative", cost))
	}
	p.cost = cost
	return nil
}

func (p *Product) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%v is negative", weight))
	}
	return nil
}
