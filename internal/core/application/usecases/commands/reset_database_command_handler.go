package commands

import (
	"context"

	"logistics/internal/core/ports"
)

type ResetDatabaseCommandHandler struct {
	resetter ports.DatabaseResetter
}

func NewResetDatabaseCommandHandler(resetter ports.DatabaseResetter) ResetDatabaseCommandHandler {
	return ResetDatabaseCommandHandler{resetter: resetter}
}

func (h *ResetDatabaseCommandHandler) Handle(ctx context.Context, cmd ResetDatabaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.resetter.Reset(ctx)
}
