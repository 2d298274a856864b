package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strictSpecs() customer.Specs {
	return customer.Specs{
		RequiresPortalUpload:    true,
		PortalURL:               "https://proveedores.caribe.mx",
		RequiresInsurancePolicy: true,
		AcceptedDocType:         customer.DocInvoice,
	}
}

func TestValidatePackingListCommandHandler_Handle_WarningsWithoutAcknowledgement(t *testing.T) {
	ctx := t.Context()
	o := packedOrder(t, "SO-1")
	cmd, err := commands.NewValidatePackingListCommand("SO-1", false)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, "SO-1").Return(o, nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, "cust1").Return(cust1(t, strictSpecs()), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidatePackingListCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, res.Locked)
	require.Len(t, res.Warnings, 2)
	assert.Equal(t, order.WarningPortalUploadRequired, res.Warnings[0].Code)
	assert.Equal(t, order.WarningInsurancePolicyRequired, res.Warnings[1].Code)
	assert.False(t, o.IsPackingListValidated())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestValidatePackingListCommandHandler_Handle_Acknowledged(t *testing.T) {
	ctx := t.Context()
	o := packedOrder(t, "SO-1")
	cmd, _ := commands.NewValidatePackingListCommand("SO-1", true)

	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, "SO-1").Return(o, nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, "cust1").Return(cust1(t, strictSpecs()), nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidatePackingListCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, res.Locked)
	assert.True(t, o.IsPackingListValidated())
	uow.AssertExpectations(t)
}

func TestValidatePackingListCommandHandler_Handle_AlreadyLockedIsNoop(t *testing.T) {
	ctx := t.Context()
	o := lockedOrder(t, "SO-1")
	cmd, _ := commands.NewValidatePackingListCommand("SO-1", false)

	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, "SO-1").Return(o, nil).Once()
	uow.On("CustomerRepository").Return(customers).Once()
	customers.On("Get", ctx, "cust1").Return(cust1(t, strictSpecs()), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidatePackingListCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, res.Locked)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestValidatePackingListCommandHandler_Handle_NoBundles(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewValidatePackingListCommand("SO-1", true)

	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, "SO-1").Return(pendingOrder(t, "SO-1"), nil).Once()
	uow.On("CustomerRepository").Return(customers).Once()
	customers.On("Get", ctx, "cust1").Return(cust1(t, customer.DefaultSpecs()), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidatePackingListCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.ErrorIs(t, err, order.ErrNoBundles)
}
