package commands

import "context"

// PutAwayLotCommandHandler stores a lot: the lot becomes stored, every
// product in it gains the received units and is moved to the location, and
// the location's contents are merged with the lot items. Everything happens
// in one transaction.
type PutAwayLotCommandHandler struct {
	uowFactory UoWFactory
}

func NewPutAwayLotCommandHandler(uowFactory UoWFactory) PutAwayLotCommandHandler {
	return PutAwayLotCommandHandler{uowFactory: uowFactory}
}

func (h *PutAwayLotCommandHandler) Handle(ctx context.Context, cmd PutAwayLotCommand) error {
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
	productRepo := uow.ProductRepository()
	locationRepo := uow.LocationRepository()

	lot, err := lotRepo.Get(ctx, cmd.LotID())
	if err != nil {
		return err
	}
	location, err := locationRepo.Get(ctx, cmd.LocationID())
	if err != nil {
		return err
	}

	if err = lot.MarkStored(); err != nil {
		return err
	}

	for _, item := range lot.Items() {
		p, getErr := productRepo.Get(ctx, item.ProductID())
		if getErr != nil {
			return getErr
		}
		if item.Quantity() > 0 {
			if err = p.Restock(item.Quantity()); err != nil {
				return err
			}
		}
		p.StoreAt(location.ID())
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	location.Store(lot.Items())

	if err = locationRepo.Update(ctx, location); err != nil {
		return err
	}
	if err = lotRepo.Update(ctx, lot); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
