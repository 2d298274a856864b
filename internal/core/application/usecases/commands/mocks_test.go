package commands_test

import (
	"context"
	"io"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/supplier"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}
func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*product.Product)
	return products, args.Error(1)
}
func (m *MockProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Add(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSupplierRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockLotRepository struct{ mock.Mock }

func (m *MockLotRepository) Add(ctx context.Context, l *inbound.Lot) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLotRepository) Update(ctx context.Context, l *inbound.Lot) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLotRepository) Get(ctx context.Context, id string) (*inbound.Lot, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*inbound.Lot)
	return l, args.Error(1)
}
func (m *MockLotRepository) GetAll(ctx context.Context) ([]*inbound.Lot, error) {
	args := m.Called(ctx)
	lots, _ := args.Get(0).([]*inbound.Lot)
	return lots, args.Error(1)
}
func (m *MockLotRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Update(ctx context.Context, l *warehouse.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLocationRepository) Get(ctx context.Context, id string) (*warehouse.Location, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*warehouse.Location)
	return l, args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) NextID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRouteRepository) Get(ctx context.Context, id string) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}
func (m *MockRouteRepository) GetAllCarriers(ctx context.Context) ([]*route.Carrier, error) {
	args := m.Called(ctx)
	carriers, _ := args.Get(0).([]*route.Carrier)
	return carriers, args.Error(1)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}
func (m *MockUoW) LotRepository() ports.LotRepository {
	args := m.Called()
	return args.Get(0).(ports.LotRepository)
}
func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}
func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLotUoWFactory struct{ mock.Mock }

func (m *MockLotUoWFactory) Create() commands.LotUoW {
	args := m.Called()
	return args.Get(0).(commands.LotUoW)
}

type MockCSVFetcher struct{ mock.Mock }

func (m *MockCSVFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	args := m.Called(ctx, url)
	body, _ := args.Get(0).(io.ReadCloser)
	return body, args.Error(1)
}

type MockSpreadsheetDecoder struct{ mock.Mock }

func (m *MockSpreadsheetDecoder) Decode(filename string, data []byte) (services.Sheet, error) {
	args := m.Called(filename, data)
	return args.Get(0).(services.Sheet), args.Error(1)
}

type MockSheetExporter struct{ mock.Mock }

func (m *MockSheetExporter) Export(ctx context.Context, payload ports.SheetPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockAdvisor struct{ mock.Mock }

func (m *MockAdvisor) ParseAddressChange(ctx context.Context, email string) (ports.AddressChangeCandidate, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(ports.AddressChangeCandidate), args.Error(1)
}
func (m *MockAdvisor) AnalyzeOverstock(ctx context.Context, items []ports.OverstockItem) ([]ports.OverstockSuggestion, error) {
	args := m.Called(ctx, items)
	out, _ := args.Get(0).([]ports.OverstockSuggestion)
	return out, args.Error(1)
}
func (m *MockAdvisor) StorageAdvice(ctx context.Context, shelf, item ports.Dimensions) (ports.StorageRecommendation, error) {
	args := m.Called(ctx, shelf, item)
	return args.Get(0).(ports.StorageRecommendation), args.Error(1)
}
func (m *MockAdvisor) OptimizeRoute(ctx context.Context, addresses []string) ([]string, error) {
	args := m.Called(ctx, addresses)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

type MockResetter struct{ mock.Mock }

func (m *MockResetter) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
