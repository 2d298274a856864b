// Package inbound models import lots moving from customs to storage.
package inbound

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrLotIsNotConstructed = errors.New("Lot must be created via NewLot or RestoreLot")

// ErrStatusTransitionIsInvalid is wrapped by every rejected lot status change.
var ErrStatusTransitionIsInvalid = errors.New("lot status transition is invalid")

// Status is the receiving stage of a lot: Customs -> Receiving -> Stored.
type Status string

const (
	Customs   Status = "customs"
	Receiving Status = "receiving"
	Stored    Status = "stored"
)

func (s Status) Validate() error {
	switch s {
	case Customs, Receiving, Stored:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("lot status is invalid", fmt.Errorf("%q is not a known status", string(s)))
	}
}

// Lot is an inbound shipment identified by its customs entry number.
type Lot struct {
	id          string
	supplierID  string
	arrivalDate string
	status      Status
	items       kernel.Items

	isConstructed bool
}

// NewLot creates a lot held at customs.
func NewLot(id, supplierID, arrivalDate string, items kernel.Items) (*Lot, error) {
	return RestoreLot(id, supplierID, arrivalDate, Customs, items)
}

func RestoreLot(id, supplierID, arrivalDate string, status Status, items kernel.Items) (*Lot, error) {
	id = strings.TrimSpace(id)

	var err error
	if id == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("lot id"))
	}
	if strings.TrimSpace(supplierID) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("supplier id"))
	}
	if len(items) == 0 {
		err = errors.Join(err, errs.NewValueIsRequiredError("lot items"))
	}
	err = errors.Join(err, status.Validate())
	if err != nil {
		return nil, err
	}

	return &Lot{
		id:            id,
		supplierID:    strings.TrimSpace(supplierID),
		arrivalDate:   strings.TrimSpace(arrivalDate),
		status:        status,
		items:         items.Clone(),
		isConstructed: true,
	}, nil
}

func (l *Lot) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLotIsNotConstructed
	}
	return nil
}

func (l *Lot) ID() string { return l.id }
func (l *Lot) SupplierID() string { return l.supplierID }
func (l *Lot) ArrivalDate() string { return l.arrivalDate }
func (l *Lot) Status() Status { return l.status }
func (l *Lot) Items() kernel.Items { return l.items.Clone() }

// AddItems appends CSV lines that belong to the same lot.
func (l *Lot) AddItems(items kernel.Items) {
	l.items = append(l.items, items...)
}

// Clear releases the lot from customs to the receiving dock.
func (l *Lot) Clear() error {
	if l.status != Customs {
		return l.invalidTransition(Receiving)
	}
	l.status = Receiving
	return nil
}

// MarkStored closes the lot after put-away. A lot may go straight from
// customs to storage.
func (l *Lot) MarkStored() error {
	if l.status == Stored {
		return l.invalidTransition(Stored)
	}
	l.status = Stored
	return nil
}

func (l *Lot) invalidTransition(target Status) error {
	return errs.NewConflictError(fmt.Errorf("%w: %s -> %s", ErrStatusTransitionIsInvalid, l.status, target))
}
