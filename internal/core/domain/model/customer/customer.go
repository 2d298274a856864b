// Package customer holds the customer master record: delivery destinations and
// the compliance specs that the packing-list validation has to honour.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// DestinationType classifies a delivery point.
type DestinationType string

const (
	Branch         DestinationType = "branch"
	Warehouse      DestinationType = "warehouse"
	ClientOfClient DestinationType = "client_of_client"
)

// DocType is the billing document the customer accepts.
type DocType string

const (
	DocInvoice              DocType = "invoice"
	DocRemittance           DocType = "remittance"
	DocInvoiceAndRemittance DocType = "invoice_and_remittance"
)

func (d DocType) Validate() error {
	switch d {
	case DocInvoice, DocRemittance, DocInvoiceAndRemittance:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("accepted document type is invalid", fmt.Errorf("%q is not supported", string(d)))
	}
}

// Destination is a delivery point owned by a customer.
type Destination struct {
	ID      string
	Name    string
	Address string
	Zone    string
	Type    DestinationType
}

// Specs are the per-customer compliance requirements. They are advisory: the
// packing-list validation turns them into warnings the operator acknowledges.
type Specs struct {
	RequiresPortalUpload           bool
	PortalURL                      string
	RequiresPurchaseOrderOnInvoice bool
	RequiresInsurancePolicy        bool
	AcceptedDocType                DocType
}

// DefaultSpecs is applied to customers imported from spreadsheets.
func DefaultSpecs() Specs {
	return Specs{AcceptedDocType: DocInvoice}
}

// Customer is the aggregate root for a buying party.
type Customer struct {
	id           string
	name         string
	email        string
	mainAddress  string
	destinations []Destination
	specs        Specs

	isConstructed bool
}

func NewCustomer(id, name, email, mainAddress string, destinations []Destination, specs Specs) (*Customer, error) {
	c := &Customer{
		email:         strings.TrimSpace(email),
		mainAddress:   strings.TrimSpace(mainAddress),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setDestinations(destinations),
		c.setSpecs(specs),
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() string { return c.id }
func (c *Customer) Name() string { return c.name }
func (c *Customer) Email() string { return c.email }
func (c *Customer) MainAddress() string { return c.mainAddress }
func (c *Customer) Specs() Specs { return c.specs }

func (c *Customer) Destinations() []Destination {
	out := make([]Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// Destination looks a delivery point up by id.
func (c *Customer) Destination(id string) (Destination, error) {
	for _, d := range c.destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return Destination{}, errs.NewObjectNotFoundError("destination", id)
}

func (c *Customer) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setDestinations(destinations []Destination) error {
	seen := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		if strings.TrimSpace(d.ID) == "" {
			return errs.NewValueIsRequiredError("destination id")
		}
		if _, dup := seen[d.ID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("destination is invalid", fmt.Errorf("duplicate id %s", d.ID))
		}
		seen[d.ID] = struct{}{}
	}
	c.destinations = make([]Destination, len(destinations))
	copy(c.destinations, destinations)
	return nil
}

func (c *Customer) setSpecs(specs Specs) error {
	if specs.AcceptedDocType == "" {
		specs.AcceptedDocType = DocInvoice
	}
	if err := specs.AcceptedDocType.Validate(); err != nil {
		return err
	}
	c.specs = specs
	return nil
}
