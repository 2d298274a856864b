package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func vallejoOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewSaleOrder("SO-1002", "cust2",
		order.Destination{ID: "dest2_1", Address: "Norte 45 #100, Vallejo, CDMX"},
		lineItems(t, "50SPA1GMC100", 1000), decimal.NewFromInt(22500), order.FreightCompany, "", time.Now())
	require.NoError(t, err)
	_, err = o.AddBundle(25, lineItems(t, "50SPA1GMC100", 500))
	require.NoError(t, err)
	_, err = o.LockPackingList(customer.DefaultSpecs(), true)
	require.NoError(t, err)
	require.NoError(t, o.Invoice("xml-2"))
	return o
}

func TestPlanRouteCommandHandler_Handle_FollowsAdvisorOrder(t *testing.T) {
	ctx := t.Context()
	first := invoicedOrder(t, "SO-1001")
	second := vallejoOrder(t)
	departure := time.Date(2023, 10, 27, 8, 0, 0, 0, time.UTC)
	cmd, err := commands.NewPlanRouteCommand(departure)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	routes := new(MockRouteRepository)
	advisor := new(MockAdvisor)

	var planned *route.Route
	orders.On("GetAllInStatus", ctx, order.Invoiced).Return([]*order.Order{first, second}, nil).Once()
	routes.On("GetAllCarriers", ctx).Return([]*route.Carrier{}, nil).Once()
	advisor.On("OptimizeRoute", ctx, []string{"Blvd. Kukulcan Km 12, Cancún", "Norte 45 #100, Vallejo, CDMX"}).
		Return([]string{"Norte 45 #100, Vallejo, CDMX", "Blvd. Kukulcan Km 12, Cancún"}, nil).Once()
	routes.On("NextID", ctx).Return("R-4922", nil).Once()
	routes.On("Add", ctx, mock.AnythingOfType("*route.Route")).
		Run(func(args mock.Arguments) { planned = args.Get(1).(*route.Route) }).
		Return(nil).Once()
	orders.On("Update", ctx, first).Return(nil).Once()
	orders.On("Update", ctx, second).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("RouteRepository").Return(routes).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlanRouteCommandHandler(factory, services.NewRoutePlanner("car2", "T-02"), advisor)
	routeID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "R-4922", routeID)
	require.NotNil(t, planned)
	assert.Equal(t, []string{"SO-1002", "SO-1001"}, planned.OrderIDs())
	assert.Equal(t, "08:00", planned.Stops()[0].EstimatedArrival)
	assert.Equal(t, order.Shipped, first.Status())
	assert.Equal(t, "R-4922", second.RouteID())
	orders.AssertExpectations(t)
	routes.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlanRouteCommandHandler_Handle_AdvisorFailureKeepsInputOrder(t *testing.T) {
	ctx := t.Context()
	first := invoicedOrder(t, "SO-1001")
	second := vallejoOrder(t)
	cmd, _ := commands.NewPlanRouteCommand(time.Now())

	orders := new(MockOrderRepository)
	routes := new(MockRouteRepository)
	advisor := new(MockAdvisor)

	var planned *route.Route
	orders.On("GetAllInStatus", ctx, order.Invoiced).Return([]*order.Order{first, second}, nil).Once()
	routes.On("GetAllCarriers", ctx).Return([]*route.Carrier{}, nil).Once()
	advisor.On("OptimizeRoute", ctx, mock.Anything).Return(nil, errors.New("model unavailable")).Once()
	routes.On("NextID", ctx).Return("R-1", nil).Once()
	routes.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) { planned = args.Get(1).(*route.Route) }).
		Return(nil).Once()
	orders.On("Update", ctx, mock.Anything).Return(nil).Twice()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("RouteRepository").Return(routes).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlanRouteCommandHandler(factory, services.NewRoutePlanner("car2", "T-02"), advisor)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []string{"SO-1001", "SO-1002"}, planned.OrderIDs())
}

func TestPlanRouteCommandHandler_Handle_NothingToPlan(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlanRouteCommand(time.Now())

	orders := new(MockOrderRepository)
	routes := new(MockRouteRepository)
	orders.On("GetAllInStatus", ctx, order.Invoiced).Return([]*order.Order{}, nil).Once()
	routes.On("GetAllCarriers", ctx).Return([]*route.Carrier{}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("RouteRepository").Return(routes).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlanRouteCommandHandler(factory, services.NewRoutePlanner("car2", "T-02"), new(MockAdvisor))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoOrdersReady)
	assert.ErrorIs(t, err, errs.ErrConflict)
	routes.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAdvanceRouteCommandHandler_Handle_CompletionCompletesOrders(t *testing.T) {
	ctx := t.Context()
	o := invoicedOrder(t, "SO-1001")
	require.NoError(t, o.AssignRoute("R-4921"))
	r, err := route.RestoreRoute("R-4921", "T-02", route.InTransit, []route.Stop{{
		OrderID: "SO-1001", Address: "Blvd. Kukulcan Km 12, Cancún", Type: route.ClientDelivery,
		Sequence: 1, EstimatedArrival: "14:00 PM", WaitMinutes: 20,
	}})
	require.NoError(t, err)
	cmd, err := commands.NewAdvanceRouteCommand("R-4921")
	require.NoError(t, err)

	routes := new(MockRouteRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routes).Once(),
		routes.On("Get", ctx, "R-4921").Return(r, nil).Once(),
		routes.On("Update", ctx, r).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, "SO-1001").Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceRouteCommandHandler(factory)
	status, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, route.Completed, status)
	assert.Equal(t, order.Completed, o.Status())
	uow.AssertExpectations(t)
}

func TestResetDatabaseCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	resetter := new(MockResetter)
	resetter.On("Reset", ctx).Return(nil).Once()

	h := commands.NewResetDatabaseCommandHandler(resetter)
	require.NoError(t, h.Handle(ctx, commands.NewResetDatabaseCommand()))
	resetter.AssertExpectations(t)

	require.ErrorIs(t, h.Handle(ctx, commands.ResetDatabaseCommand{}), commands.ErrResetDatabaseCommandIsNotConstructed)
}
