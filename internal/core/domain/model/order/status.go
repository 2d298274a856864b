package order

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// ErrStatusTransitionIsInvalid is wrapped by every rejected status change.
var ErrStatusTransitionIsInvalid = errors.New("status transition is invalid")

// Status is the fulfilment lifecycle state of an order.
//
//	Pending ──> Released ──> Picking ──┐
//	   │            │            │     v
//	   └────────────┴────────────┴──> Packed ──> Invoiced ──> Shipped ──> Completed
//
//	Pending, Released, Picking and Packed can also move to Cancelled while the
//	packing list is still unlocked.
type Status int

const (
	Unknown Status = iota
	Pending
	Released
	Picking
	Packed
	Invoiced
	Shipped
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Released:  "released",
		Picking:   "picking",
		Packed:    "packed",
		Invoiced:  "invoiced",
		Shipped:   "shipped",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// ParseStatus maps the persisted/API name back to a Status.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsPrePacking reports whether bundles may still be added in this status.
func (s Status) IsPrePacking() bool {
	return s == Pending || s == Released || s == Picking || s == Packed
}

func (s Status) Release() (Status, error) {
	if s != Pending {
		return 0, s.invalidTransition(Released)
	}
	return Released, nil
}

func (s Status) StartPicking() (Status, error) {
	if s != Released {
		return 0, s.invalidTransition(Picking)
	}
	return Picking, nil
}

// Pack is allowed from any active pre-invoice status, including Packed itself
// so that further bundles can be created.
func (s Status) Pack() (Status, error) {
	if !s.IsPrePacking() {
		return 0, s.invalidTransition(Packed)
	}
	return Packed, nil
}

func (s Status) Invoice() (Status, error) {
	if s != Packed {
		return 0, s.invalidTransition(Invoiced)
	}
	return Invoiced, nil
}

func (s Status) Ship() (Status, error) {
	if s != Invoiced {
		return 0, s.invalidTransition(Shipped)
	}
	return Shipped, nil
}

func (s Status) Complete() (Status, error) {
	if s != Shipped {
		return 0, s.invalidTransition(Completed)
	}
	return Completed, nil
}

func (s Status) Cancel() (Status, error) {
	if !s.IsPrePacking() {
		return 0, s.invalidTransition(Cancelled)
	}
	return Cancelled, nil
}

func (s Status) invalidTransition(target Status) error {
	return errs.NewConflictError(fmt.Errorf("%w: %s -> %s", ErrStatusTransitionIsInvalid, s, target))
}
