package commands

import "context"

type ClearLotCommandHandler struct {
	uowFactory LotUoWFactory
}

func NewClearLotCommandHandler(uowFactory LotUoWFactory) ClearLotCommandHandler {
	return ClearLotCommandHandler{uowFactory: uowFactory}
}

func (h *ClearLotCommandHandler) Handle(ctx context.Context, cmd ClearLotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lotRepo := uow.LotRepository()
	lot, err := lotRepo.Get(ctx, cmd.LotID())
	if err != nil {
		return err
	}
	if err = lot.Clear(); err != nil {
		return err
	}
	if err = lotRepo.Update(ctx, lot); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
