package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var (
	ErrClearLotCommandIsNotConstructed = errors.New(
		"ClearLotCommand must be created via NewClearLotCommand constructor",
	)
	ErrLotIDIsRequired = errors.New("lot id is required")
)

// ClearLotCommand releases an inbound lot from customs to receiving.
type ClearLotCommand struct { //nolint:recvcheck //using for validation
	lotID string

	guard guard.ConstructorGuard
}

func NewClearLotCommand(lotID string) (ClearLotCommand, error) {
	lotID = strings.TrimSpace(lotID)
	if lotID == "" {
		return ClearLotCommand{}, ErrLotIDIsRequired
	}
	return ClearLotCommand{lotID: lotID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearLotCommand) Validate() error {
	return c.guard.Validate(ErrClearLotCommandIsNotConstructed)
}

func (c ClearLotCommand) LotID() string { return c.lotID }
