package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var (
	ErrPutAwayLotCommandIsNotConstructed = errors.New(
		"PutAwayLotCommand must be created via NewPutAwayLotCommand constructor",
	)
	ErrLocationIDIsRequired = errors.New("a storage location must be selected")
)

// PutAwayLotCommand stores a received lot at a warehouse location.
type PutAwayLotCommand struct { //nolint:recvcheck //using for validation
	lotID      string
	locationID string

	guard guard.ConstructorGuard
}

func NewPutAwayLotCommand(lotID, locationID string) (PutAwayLotCommand, error) {
	cmd := PutAwayLotCommand{
		lotID:      strings.TrimSpace(lotID),
		locationID: strings.TrimSpace(locationID),
		guard:      guard.NewConstructorGuard(),
	}

	var errLot, errLocation error
	if cmd.lotID == "" {
		errLot = ErrLotIDIsRequired
	}
	if cmd.locationID == "" {
		errLocation = ErrLocationIDIsRequired
	}
	if err := errors.Join(errLot, errLocation); err != nil {
		return PutAwayLotCommand{}, err
	}
	return cmd, nil
}

func (c PutAwayLotCommand) Validate() error {
	return c.guard.Validate(ErrPutAwayLotCommandIsNotConstructed)
}

func (c PutAwayLotCommand) LotID() string { return c.lotID }
func (c PutAwayLotCommand) LocationID() string { return c.locationID }
