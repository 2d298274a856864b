package commands

import (
	"errors"
	"time"

	"logistics/internal/pkg/guard"
)

var (
	ErrPlanRouteCommandIsNotConstructed = errors.New(
		"PlanRouteCommand must be created via NewPlanRouteCommand constructor",
	)
	ErrDepartureIsRequired = errors.New("departure time is required")
)

// PlanRouteCommand builds one route from every invoiced order that has none.
type PlanRouteCommand struct { //nolint:recvcheck //using for validation
	departure time.Time

	guard guard.ConstructorGuard
}

func NewPlanRouteCommand(departure time.Time) (PlanRouteCommand, error) {
	if departure.IsZero() {
		return PlanRouteCommand{}, ErrDepartureIsRequired
	}
	return PlanRouteCommand{departure: departure, guard: guard.NewConstructorGuard()}, nil
}

func (c PlanRouteCommand) Validate() error {
	return c.guard.Validate(ErrPlanRouteCommandIsNotConstructed)
}

func (c PlanRouteCommand) Departure() time.Time { return c.departure }
