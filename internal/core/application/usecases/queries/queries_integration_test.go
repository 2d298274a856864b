package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type discardTracker struct{}

func (discardTracker) TrackAggregate(string, any) {}

// QueriesIntegrationTestSuite reads the seeded demo catalog through every
// query handler.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	resetter  *postgres_adapter.Resetter
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(ctx, dsn)
	suite.Require().NoError(err)
	suite.db = db
	suite.resetter = postgres_adapter.NewResetter(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.resetter.Reset(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_NewestFirstWithPartyNames() {
	query, err := queries.NewListOrdersQuery("")
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("SO-1003", result[0].ID)
	suite.Equal("Hotel Boutique Los Cabos", result[0].PartyName)
	suite.Equal("SO-1002", result[1].ID)
	suite.Equal(2, result[1].BundleCount)
	suite.True(decimal.NewFromInt(22500).Equal(result[1].Total))
	suite.Equal("R-4921", result[2].RouteID)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FiltersByStatus() {
	query, err := queries.NewListOrdersQuery("invoiced")
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("SO-1002", result[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsItemsAndBundles() {
	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery("SO-1002")
	suite.Require().NoError(err)
	detail, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]queries.LineItem{{ProductID: "50SPA1GMC100", Quantity: 1000}}, detail.Items)
	suite.Equal("dest2_1", detail.DestinationID)
	suite.Require().Len(detail.Bundles, 2)
	suite.Equal("B-SO-1002-2", detail.Bundles[1].ID)
	suite.Empty(detail.AddressHistory)

	query, err = queries.NewGetOrderQuery("SO-404")
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetPackingList_OneRowPerBundleItem() {
	handler := queries.NewGetPackingListQueryHandler(suite.db)

	query, err := queries.NewGetPackingListQuery("SO-1002")
	suite.Require().NoError(err)
	doc, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Distribuidora Textil del Centro", doc.CustomerName)
	suite.Require().Len(doc.Rows, 2)
	suite.Equal("SPA FACIAL PREMIUM", doc.Rows[0].ProductName)
	suite.Equal(2, doc.Rows[1].BundleNumber)
	suite.Equal(2, doc.TotalBundles)
	suite.InDelta(50.0, doc.TotalWeight, 0.001)
	suite.Equal(1000, doc.TotalUnits)

	query, err = queries.NewGetPackingListQuery("SO-1003")
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().ErrorIs(err, order.ErrNoBundles)
}

func (suite *QueriesIntegrationTestSuite) TestGetPackingList_PurchaseOrderHasNoCustomer() {
	ctx := context.Background()
	item, err := kernel.NewLineItem("70LVL2GMC7200", 100)
	suite.Require().NoError(err)
	po, err := order.NewPurchaseOrder("PO-1", "cust1", kernel.Items{item}, decimal.NewFromInt(8550), time.Now())
	suite.Require().NoError(err)
	_, err = po.AddBundle(60, kernel.Items{item})
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, discardTracker{}).Add(ctx, po))

	query, err := queries.NewGetPackingListQuery("PO-1")
	suite.Require().NoError(err)
	doc, err := queries.NewGetPackingListQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(doc.CustomerName)
	suite.Equal(1, doc.TotalBundles)
}

func (suite *QueriesIntegrationTestSuite) TestGetInvoice_PricesAtMarkup() {
	query, err := queries.NewGetInvoiceQuery("SO-1001")
	suite.Require().NoError(err)

	inv, err := queries.NewGetInvoiceQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Grand Hyatt Cancún", inv.CustomerName)
	suite.Equal("Blvd. Kukulcan Km 12, Cancún", inv.CustomerAddress)
	suite.Require().Len(inv.Lines, 1)
	suite.True(decimal.RequireFromString("128.25").Equal(inv.Lines[0].UnitPrice))
	suite.True(decimal.RequireFromString("64125").Equal(inv.Lines[0].Amount))
	suite.True(decimal.NewFromInt(42750).Equal(inv.Total))
}

func (suite *QueriesIntegrationTestSuite) TestGetInvoice_UnknownCustomerFallsBack() {
	suite.addPurchaseOrder("PO-1", "sup9")

	query, err := queries.NewGetInvoiceQuery("PO-1")
	suite.Require().NoError(err)
	inv, err := queries.NewGetInvoiceQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(queries.WalkInCustomer, inv.CustomerName)
	suite.Equal(queries.NoAddress, inv.CustomerAddress)
}

func (suite *QueriesIntegrationTestSuite) TestGetPurchaseHistory_AggregatesPerProduct() {
	suite.addPurchaseOrder("PO-1", "sup1")
	suite.addPurchaseOrder("PO-2", "sup1")

	query, err := queries.NewGetPurchaseHistoryQuery("sup1")
	suite.Require().NoError(err)
	history, err := queries.NewGetPurchaseHistoryQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Cotton Kings Intl", history.SupplierName)
	suite.Equal(2, history.OrderCount)
	suite.Require().Len(history.Products, 1)
	suite.Equal("TALISSA BAÑO BLANCO", history.Products[0].ProductName)
	suite.Equal(6000, history.Products[0].TotalQuantity)

	query, err = queries.NewGetPurchaseHistoryQuery("sup404")
	suite.Require().NoError(err)
	_, err = queries.NewGetPurchaseHistoryQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListProductsAndLots() {
	ctx := context.Background()

	products, err := queries.NewListProductsQueryHandler(suite.db).Handle(ctx, queries.NewListProductsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(products, 4)
	suite.Equal("LH", products[0].Family)
	suite.True(decimal.NewFromInt(180).Equal(products[0].SalePrice))

	lots, err := queries.NewListInboundLotsQueryHandler(suite.db).Handle(ctx, queries.NewListInboundLotsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(lots, 2)
	suite.Equal("PED-239901", lots[0].ID)
	suite.Equal("Cotton Kings Intl", lots[0].SupplierName)
	suite.Equal(5000, lots[0].TotalUnits)
}

func (suite *QueriesIntegrationTestSuite) TestGetRoute_LoadingOrderIsReversed() {
	query, err := queries.NewGetRouteQuery("R-4921")
	suite.Require().NoError(err)

	view, err := queries.NewGetRouteQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("T-02", view.TruckID)
	suite.Equal("in_transit", view.Status)
	suite.Require().Len(view.Stops, 1)
	suite.Equal(20, view.Stops[0].WaitMinutes)
	suite.Equal([]string{"SO-1001"}, view.LoadingOrder)
}

func (suite *QueriesIntegrationTestSuite) TestExportSnapshot_NestsChildRows() {
	snapshot, err := queries.NewExportSnapshotQueryHandler(suite.db).Handle(context.Background(), queries.NewExportSnapshotQuery())
	suite.Require().NoError(err)
	suite.False(snapshot.LastUpdated.IsZero())

	var orders []struct {
		ID      string            `json:"id"`
		Bundles []json.RawMessage `json:"bundles"`
	}
	suite.Require().NoError(json.Unmarshal(snapshot.Orders, &orders))
	suite.Require().Len(orders, 3)
	suite.Len(orders[1].Bundles, 2)

	var customers []struct {
		Destinations []json.RawMessage `json:"destinations"`
	}
	suite.Require().NoError(json.Unmarshal(snapshot.Customers, &customers))
	suite.Require().Len(customers, 3)
	suite.Len(customers[0].Destinations, 2)

	var locations []json.RawMessage
	suite.Require().NoError(json.Unmarshal(snapshot.Locations, &locations))
	suite.Len(locations, 50)
}

func (suite *QueriesIntegrationTestSuite) TestAnalyzeEmail_LooksUpTheOrder() {
	advisor := new(MockAdvisor)
	advisor.On("ParseAddressChange", mock.Anything, "cambiar entrega").Return(ports.AddressChangeCandidate{
		HasChange:       true,
		OrderID:         "SO-1001",
		NewAddress:      "Bodega Playa, Calle 5ta Avenida",
		InstructionType: ports.InstructionAddressChange,
	}, nil)

	query, err := queries.NewAnalyzeEmailQuery("cambiar entrega")
	suite.Require().NoError(err)
	analysis, err := queries.NewAnalyzeEmailQueryHandler(suite.db, advisor).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(analysis.OrderFound)
	suite.Equal("Blvd. Kukulcan Km 12, Cancún", analysis.CurrentAddress)
	suite.Equal("Bodega Playa, Calle 5ta Avenida", analysis.NewAddress)
}

func (suite *QueriesIntegrationTestSuite) TestAnalyzeOverstock_SendsStockedProducts() {
	advisor := new(MockAdvisor)
	advisor.On("AnalyzeOverstock", mock.Anything, mock.MatchedBy(func(items []ports.OverstockItem) bool {
		return len(items) == 4 && items[0].Name == "SPA FACIAL PREMIUM" && items[0].Stock == 12000
	})).Return([]ports.OverstockSuggestion{{ProductName: "SPA FACIAL PREMIUM", CurrentStock: 12000, Suggestion: "Kit de spa"}}, nil)

	result, err := queries.NewAnalyzeOverstockQueryHandler(suite.db, advisor).Handle(context.Background(), queries.NewAnalyzeOverstockQuery())

	suite.Require().NoError(err)
	suite.Len(result, 1)
	advisor.AssertExpectations(suite.T())
}

func (suite *QueriesIntegrationTestSuite) addPurchaseOrder(id, supplierID string) {
	item, err := kernel.NewLineItem("70LVL2GMC7200", 3000)
	suite.Require().NoError(err)
	o, err := order.NewPurchaseOrder(id, supplierID, kernel.Items{item}, decimal.NewFromInt(256500), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, discardTracker{}).Add(context.Background(), o))
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
