package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearLotCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	lot := customsLot(t)
	cmd, err := commands.NewClearLotCommand("PED-239901")
	require.NoError(t, err)

	lots := new(MockLotRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LotRepository").Return(lots).Once(),
		lots.On("Get", ctx, "PED-239901").Return(lot, nil).Once(),
		lots.On("Update", ctx, lot).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockLotUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearLotCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, inbound.Receiving, lot.Status())
	uow.AssertExpectations(t)
}

func TestNewPutAwayLotCommand_RequiresLocation(t *testing.T) {
	_, err := commands.NewPutAwayLotCommand("PED-239902", " ")
	require.ErrorIs(t, err, commands.ErrLocationIDIsRequired)
}

func TestPutAwayLotCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	lot := customsLot(t)
	require.NoError(t, lot.Clear())
	p := towel(t, 1000)
	loc, err := warehouse.NewLocation("S1-U03", "S1", "R-2", "Alto", 1000, lineItems(t, "70LVL2GMC7200", 200))
	require.NoError(t, err)

	cmd, err := commands.NewPutAwayLotCommand("PED-239901", "S1-U03")
	require.NoError(t, err)

	lots := new(MockLotRepository)
	products := new(MockProductRepository)
	locations := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LotRepository").Return(lots).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		lots.On("Get", ctx, "PED-239901").Return(lot, nil).Once(),
		locations.On("Get", ctx, "S1-U03").Return(loc, nil).Once(),
		products.On("Get", ctx, "70LVL2GMC7200").Return(p, nil).Once(),
		products.On("Update", ctx, p).Return(nil).Once(),
		locations.On("Update", ctx, loc).Return(nil).Once(),
		lots.On("Update", ctx, lot).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPutAwayLotCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, inbound.Stored, lot.Status())
	assert.Equal(t, 6000, p.Stock())
	assert.Equal(t, "S1-U03", p.Aisle())
	assert.Equal(t, 5200, loc.Items().QuantityOf("70LVL2GMC7200"))
	uow.AssertExpectations(t)
}

func TestPutAwayLotCommandHandler_Handle_StoredLotIsRejected(t *testing.T) {
	ctx := t.Context()
	lot := customsLot(t)
	require.NoError(t, lot.MarkStored())
	loc, err := warehouse.NewLocation("S1-U01", "S1", "R-1", "Alto", 1000, nil)
	require.NoError(t, err)
	cmd, _ := commands.NewPutAwayLotCommand("PED-239901", "S1-U01")

	lots := new(MockLotRepository)
	products := new(MockProductRepository)
	locations := new(MockLocationRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LotRepository").Return(lots).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("LocationRepository").Return(locations).Once()
	lots.On("Get", ctx, "PED-239901").Return(lot, nil).Once()
	locations.On("Get", ctx, "S1-U01").Return(loc, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPutAwayLotCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	products.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
