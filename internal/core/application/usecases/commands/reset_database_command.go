package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrResetDatabaseCommandIsNotConstructed = errors.New(
	"ResetDatabaseCommand must be created via NewResetDatabaseCommand constructor",
)

// ResetDatabaseCommand wipes every record and reloads the seed catalog.
type ResetDatabaseCommand struct {
	guard guard.ConstructorGuard
}

func NewResetDatabaseCommand() ResetDatabaseCommand {
	return ResetDatabaseCommand{guard: guard.NewConstructorGuard()}
}

func (c *ResetDatabaseCommand) Validate() error {
	return c.guard.Validate(ErrResetDatabaseCommandIsNotConstructed)
}
