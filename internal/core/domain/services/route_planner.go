package services

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
)

// ErrNoOrdersReady is returned when no invoiced order is waiting for a route.
var ErrNoOrdersReady = errors.New("no invoiced orders waiting for a route")

// RoutePlanner is a domain service that turns the invoiced orders without a
// route into a single delivery route.
//
// Business rules:
//   - Only invoiced orders with no route are planned
//   - Orders whose freight is paid by the client, or that name a preferred
//     carrier, are dropped off at the carrier's first terminal
//   - Without a preferred carrier the default carrier is used
//   - Every other order is delivered to its destination address
//   - Stops are one hour apart starting at the departure time
//
// Example usage:
//
//	planner := NewRoutePlanner("car2", "T-02")
//	stops, err := planner.Draft(orders, carriers)
//	if errors.Is(err, ErrNoOrdersReady) {
//	    return
//	}
//	stops = planner.Reorder(stops, suggested)
//	r, err := planner.Build("R-7", departure, stops)
type RoutePlanner struct {
	defaultCarrierID string
	truckID          string
}

// NewRoutePlanner creates a planner using defaultCarrierID for terminal
// drop-offs without a preferred carrier and truckID for every route.
func NewRoutePlanner(defaultCarrierID, truckID string) RoutePlanner {
	return RoutePlanner{defaultCarrierID: defaultCarrierID, truckID: truckID}
}

// Ready filters the orders that can be put on a new route.
func (p RoutePlanner) Ready(orders []*order.Order) []*order.Order {
	ready := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status() == order.Invoiced && o.RouteID() == "" {
			ready = append(ready, o)
		}
	}
	return ready
}

// Draft computes one unnumbered stop per ready order.
//
// Returns:
//   - []route.Stop: stops in order of the input slice, without sequence or ETA
//   - error: ErrNoOrdersReady when nothing qualifies
func (p RoutePlanner) Draft(orders []*order.Order, carriers []*route.Carrier) ([]route.Stop, error) {
	ready := p.Ready(orders)
	if len(ready) == 0 {
		return nil, ErrNoOrdersReady
	}

	byID := make(map[string]*route.Carrier, len(carriers))
	for _, c := range carriers {
		byID[c.ID()] = c
	}

	stops := make([]route.Stop, 0, len(ready))
	for _, o := range ready {
		stop := route.Stop{OrderID: o.ID()}

		if o.FreightPayer() == order.FreightClient || o.PreferredCarrierID() != "" {
			carrierID := o.PreferredCarrierID()
			if carrierID == "" {
				carrierID = p.defaultCarrierID
			}
			carrier := byID[carrierID]
			stop.Type = route.CarrierDropOff
			stop.CarrierID = carrierID
			stop.Address = carrier.DropOffAddress()
			stop.WaitMinutes = carrier.ExpectedWait()
		} else {
			stop.Type = route.ClientDelivery
			stop.Address = o.Destination().Address
			stop.WaitMinutes = route.ClientDeliveryWait
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// Build numbers the stops, spaces their arrival one hour apart from
// departure and creates the route in planning status.
func (p RoutePlanner) Build(routeID string, departure time.Time, stops []route.Stop) (*route.Route, error) {
	timed := make([]route.Stop, len(stops))
	for idx, s := range stops {
		s.EstimatedArrival = departure.Add(time.Duration(idx) * time.Hour).Format("15:04")
		timed[idx] = s
	}

	r, err := route.NewRoute(routeID, p.truckID, timed)
	if err != nil {
		return nil, fmt.Errorf("plan route %s: %w", routeID, err)
	}
	return r, nil
}

// Plan drafts and builds a route in input order. Orders are not modified;
// the caller assigns them once the route is persisted.
func (p RoutePlanner) Plan(
	routeID string,
	departure time.Time,
	orders []*order.Order,
	carriers []*route.Carrier,
) (*route.Route, error) {
	stops, err := p.Draft(orders, carriers)
	if err != nil {
		return nil, err
	}
	return p.Build(routeID, departure, stops)
}

// Addresses lists the stop addresses in order, as handed to route optimisers.
func (p RoutePlanner) Addresses(stops []route.Stop) []string {
	out := make([]string, len(stops))
	for idx, s := range stops {
		out[idx] = s.Address
	}
	return out
}

// Reorder arranges stops to follow the suggested address order. The
// input order is kept unless the suggestion is a permutation of the stop
// addresses.
func (p RoutePlanner) Reorder(stops []route.Stop, addresses []string) []route.Stop {
	if len(addresses) != len(stops) {
		return stops
	}

	pool := make(map[string][]route.Stop, len(stops))
	for _, s := range stops {
		pool[s.Address] = append(pool[s.Address], s)
	}

	out := make([]route.Stop, 0, len(stops))
	for _, addr := range addresses {
		candidates := pool[addr]
		if len(candidates) == 0 {
			return stops
		}
		out = append(out, candidates[0])
		pool[addr] = candidates[1:]
	}
	return out
}
