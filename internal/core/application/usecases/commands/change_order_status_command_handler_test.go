package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(" SO-1003 ", commands.ActionRelease)
	require.NoError(t, err)
	assert.Equal(t, "SO-1003", cmd.OrderID())
	assert.Equal(t, commands.ActionRelease, cmd.Action())

	_, err = commands.NewChangeOrderStatusCommand("", "ship")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name   string
		order  func(*testing.T) *order.Order
		action commands.OrderAction
		want   order.Status
	}{
		{"release pending", func(t *testing.T) *order.Order { return pendingOrder(t, "SO-1") }, commands.ActionRelease, order.Released},
		{"cancel packed", func(t *testing.T) *order.Order { return packedOrder(t, "SO-1") }, commands.ActionCancel, order.Cancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			o := tc.order(t)
			cmd, err := commands.NewChangeOrderStatusCommand("SO-1", tc.action)
			require.NoError(t, err)

			orders := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orders).Once(),
				orders.On("Get", ctx, "SO-1").Return(o, nil).Once(),
				orders.On("Update", ctx, o).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewChangeOrderStatusCommandHandler(factory)
			got, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			orders.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestChangeOrderStatusCommandHandler_Handle_CancelLockedIsConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand("SO-1", commands.ActionCancel)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, "SO-1").Return(lockedOrder(t, "SO-1"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.ErrorIs(t, err, order.ErrPackingListLocked)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand("SO-404", commands.ActionRelease)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, "SO-404").Return(nil, errs.NewObjectNotFoundError("order", "SO-404")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
