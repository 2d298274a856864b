// Package route models delivery routes and the carriers they hand parcels to.
package route

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// ErrStatusTransitionIsInvalid is wrapped by every rejected route status change.
var ErrStatusTransitionIsInvalid = errors.New("route status transition is invalid")

// ClientDeliveryWait is the expected stop time at a customer's door.
const ClientDeliveryWait = 20

type Status string

const (
	Planning  Status = "planning"
	Loading   Status = "loading"
	InTransit Status = "in_transit"
	Completed Status = "completed"
)

var nextStatus = map[Status]Status{
	Planning:  Loading,
	Loading:   InTransit,
	InTransit: Completed,
}

func (s Status) Validate() error {
	switch s {
	case Planning, Loading, InTransit, Completed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("route status is invalid", fmt.Errorf("%q is not a known status", string(s)))
	}
}

type StopType string

const (
	ClientDelivery StopType = "client_delivery"
	CarrierDropOff StopType = "carrier_dropoff"
)

// Stop is one delivery on a route.
type Stop struct {
	OrderID          string
	CarrierID        string
	Address          string
	Type             StopType
	Sequence         int
	EstimatedArrival string
	WaitMinutes      int
}

type Route struct {
	id      string
	truckID string
	status  Status
	stops   []Stop

	isConstructed bool
}

// NewRoute creates a route in planning. Stops are renumbered 1..n in the
// given order.
func NewRoute(id, truckID string, stops []Stop) (*Route, error) {
	if len(stops) == 0 {
		return nil, errs.NewValueIsRequiredError("route stops")
	}
	numbered := make([]Stop, len(stops))
	for idx, s := range stops {
		s.Sequence = idx + 1
		numbered[idx] = s
	}
	return RestoreRoute(id, truckID, Planning, numbered)
}

func RestoreRoute(id, truckID string, status Status, stops []Stop) (*Route, error) {
	id = strings.TrimSpace(id)

	var err error
	if id == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("route id"))
	}
	err = errors.Join(err, status.Validate())
	for idx, s := range stops {
		if s.Sequence != idx+1 {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
				"stop sequence is invalid", fmt.Errorf("stop %d found at position %d", s.Sequence, idx+1)))
			break
		}
	}
	if err != nil {
		return nil, err
	}

	return &Route{
		id:            id,
		truckID:       strings.TrimSpace(truckID),
		status:        status,
		stops:         append([]Stop{}, stops...),
		isConstructed: true,
	}, nil
}

func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

func (r *Route) ID() string { return r.id }
func (r *Route) TruckID() string { return r.truckID }
func (r *Route) Status() Status { return r.status }
func (r *Route) Stops() []Stop { return append([]Stop{}, r.stops...) }

// OrderIDs lists the orders served by the route in stop order.
func (r *Route) OrderIDs() []string {
	ids := make([]string, 0, len(r.stops))
	for _, s := range r.stops {
		if s.OrderID != "" {
			ids = append(ids, s.OrderID)
		}
	}
	return ids
}

// LoadingOrder returns the stops in the order they go into the truck: the
// last stop is loaded first so the first stop sits at the door.
func (r *Route) LoadingOrder() []Stop {
	out := make([]Stop, len(r.stops))
	for idx, s := range r.stops {
		out[len(r.stops)-1-idx] = s
	}
	return out
}

// Advance moves the route one step along planning -> loading -> in_transit -> completed.
func (r *Route) Advance() error {
	next, ok := nextStatus[r.status]
	if !ok {
		return errs.NewConflictError(fmt.Errorf("%w: %s is final", ErrStatusTransitionIsInvalid, r.status))
	}
	r.status = next
	return nil
}
