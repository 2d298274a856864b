package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrExportSheetsCommandIsNotConstructed = errors.New(
	"ExportSheetsCommand must be created via NewExportSheetsCommand constructor",
)

// ExportSheetsCommand pushes inventory, orders and inbound lots to the
// spreadsheet webhook.
//
// Example:
//
//	cmd := NewExportSheetsCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("sheets export failed: %v", err)
//	}
type ExportSheetsCommand struct {
	guard guard.ConstructorGuard
}

func NewExportSheetsCommand() ExportSheetsCommand {
	return ExportSheetsCommand{guard: guard.NewConstructorGuard()}
}

func (c *ExportSheetsCommand) Validate() error {
	return c.guard.Validate(ErrExportSheetsCommandIsNotConstructed)
}
