package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetRouteQueryIsNotConstructed = errors.New(
		"GetRouteQuery must be created via NewGetRouteQuery constructor",
	)
	ErrRouteIDIsRequired = errors.New("route id is required")
)

// GetRouteQuery reads a route with its stops and the truck loading sequence.
type GetRouteQuery struct {
	routeID string

	guard guard.ConstructorGuard
}

func NewGetRouteQuery(routeID string) (GetRouteQuery, error) {
	routeID = strings.TrimSpace(routeID)
	if routeID == "" {
		return GetRouteQuery{}, ErrRouteIDIsRequired
	}
	return GetRouteQuery{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

func (q GetRouteQuery) RouteID() string { return q.routeID }

type StopView struct {
	Sequence         int    `json:"sequence"`
	OrderID          string `json:"orderId"`
	CarrierID        string `json:"carrierId,omitempty"`
	Address          string `json:"address"`
	Type             string `json:"type"`
	EstimatedArrival string `json:"estimatedArrival"`
	WaitMinutes      int    `json:"waitTimeMinutes"`
}

// RouteView lists the stops in delivery order. LoadingOrder holds the order
// ids in the sequence they go into the truck: last stop first.
type RouteView struct {
	ID           string     `json:"id"`
	TruckID      string     `json:"truckId"`
	Status       string     `json:"status"`
	Stops        []StopView `json:"stops"`
	LoadingOrder []string   `json:"loadingOrder"`
}
