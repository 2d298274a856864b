package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var (
	ErrAdvanceRouteCommandIsNotConstructed = errors.New(
		"AdvanceRouteCommand must be created via NewAdvanceRouteCommand constructor",
	)
	ErrRouteIDIsRequired = errors.New("route id is required")
)

// AdvanceRouteCommand moves a route to its next stage.
type AdvanceRouteCommand struct { //nolint:recvcheck //using for validation
	routeID string

	guard guard.ConstructorGuard
}

func NewAdvanceRouteCommand(routeID string) (AdvanceRouteCommand, error) {
	routeID = strings.TrimSpace(routeID)
	if routeID == "" {
		return AdvanceRouteCommand{}, ErrRouteIDIsRequired
	}
	return AdvanceRouteCommand{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceRouteCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceRouteCommandIsNotConstructed)
}

func (c AdvanceRouteCommand) RouteID() string { return c.routeID }
