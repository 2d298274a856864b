package route

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// DefaultCarrierWait is used when a carrier has no recorded average wait.
const DefaultCarrierWait = 45

// DefaultTerminalAddress is used when a carrier has no terminals on file.
const DefaultTerminalAddress = "Terminal Paquetería"

type CarrierType string

const (
	OwnFleet CarrierType = "own_fleet"
	Freight  CarrierType = "carrier"
	Parcel   CarrierType = "parcel"
)

type CarrierStatus string

const (
	CarrierActive    CarrierStatus = "active"
	CarrierSuspended CarrierStatus = "suspended"
)

// Terminal is a carrier depot where parcels are dropped off.
type Terminal struct {
	Name    string
	Address string
	Zone    string
}

// Carrier is a third-party or own-fleet transport provider.
type Carrier struct {
	id          string
	name        string
	kind        CarrierType
	waitTimeAvg int
	terminals   []Terminal
	status      CarrierStatus

	isConstructed bool
}

func NewCarrier(id, name string, kind CarrierType, waitTimeAvg int, terminals []Terminal, status CarrierStatus) (*Carrier, error) {
	id = strings.TrimSpace(id)

	var err error
	if id == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("carrier id"))
	}
	switch kind {
	case OwnFleet, Freight, Parcel:
	default:
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("carrier type is invalid", fmt.Errorf("%q is not supported", string(kind))))
	}
	if status != CarrierActive && status != CarrierSuspended {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("carrier status is invalid", fmt.Errorf("%q is not supported", string(status))))
	}
	if waitTimeAvg < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("wait time is invalid", fmt.Errorf("%d is negative", waitTimeAvg)))
	}
	if err != nil {
		return nil, err
	}

	return &Carrier{
		id:            id,
		name:          strings.TrimSpace(name),
		kind:          kind,
		waitTimeAvg:   waitTimeAvg,
		terminals:     append([]Terminal{}, terminals...),
		status:        status,
		isConstructed: true,
	}, nil
}

func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

func (c *Carrier) ID() string { return c.id }
func (c *Carrier) Name() string { return c.name }
func (c *Carrier) Type() CarrierType { return c.kind }
func (c *Carrier) WaitTimeAvg() int { return c.waitTimeAvg }
func (c *Carrier) Status() CarrierStatus { return c.status }
func (c *Carrier) Terminals() []Terminal { return append([]Terminal{}, c.terminals...) }

// DropOffAddress is the address of the first terminal, or a generic
// placeholder for carriers without terminals.
func (c *Carrier) DropOffAddress() string {
	if c == nil || len(c.terminals) == 0 || c.terminals[0].Address == "" {
		return DefaultTerminalAddress
	}
	return c.terminals[0].Address
}

// ExpectedWait is the average wait at the carrier, defaulting when unknown.
func (c *Carrier) ExpectedWait() int {
	if c == nil || c.waitTimeAvg <= 0 {
		return DefaultCarrierWait
	}
	return c.waitTimeAvg
}
