package commands_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const inboundSheet = `pedimento,proveedor,fecha,producto,cantidad
PED-9,sup1,2024-01-01,70LVL2GMC7200,500
PED-9,sup1,2024-01-01,80LH3GMC9000,40
PED-239901,sup1,2023-10-25,70LVL2GMC7200,5000
broken,line
`

func TestNewImportInboundCSVCommand_InvalidURL(t *testing.T) {
	_, err := commands.NewImportInboundCSVCommand("")
	require.ErrorIs(t, err, commands.ErrSourceURLIsRequired)

	_, err = commands.NewImportInboundCSVCommand("ftp://sheets/inbound.csv")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestImportInboundCSVCommandHandler_Handle_SkipsKnownLots(t *testing.T) {
	ctx := t.Context()
	const url = "https://docs.example.com/inbound.csv"
	cmd, err := commands.NewImportInboundCSVCommand(url)
	require.NoError(t, err)

	fetcher := new(MockCSVFetcher)
	fetcher.On("Fetch", ctx, url).Return(io.NopCloser(strings.NewReader(inboundSheet)), nil).Once()

	var added *inbound.Lot
	lots := new(MockLotRepository)
	lots.On("Exists", ctx, "PED-9").Return(false, nil).Once()
	lots.On("Exists", ctx, "PED-239901").Return(true, nil).Once()
	lots.On("Add", ctx, mock.AnythingOfType("*inbound.Lot")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*inbound.Lot) }).
		Return(nil).Once()

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LotRepository").Return(lots).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewImportInboundCSVCommandHandler(factory, fetcher)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.InboundImportResult{Created: 1, Existing: 1, IgnoredLines: 1}, res)
	require.NotNil(t, added)
	assert.Equal(t, inbound.Customs, added.Status())
	assert.Len(t, added.Items(), 2)
	lots.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestImportInboundCSVCommandHandler_Handle_FetchError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewImportInboundCSVCommand("https://docs.example.com/inbound.csv")

	fetcher := new(MockCSVFetcher)
	fetcher.On("Fetch", ctx, mock.Anything).Return(nil, errors.New("status 404")).Once()
	factory := new(MockUoWFactory)

	h := commands.NewImportInboundCSVCommandHandler(factory, fetcher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	factory.AssertNotCalled(t, "Create")
}

func TestNewImportCatalogCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewImportCatalogCommand("orders", "catalog.pdf", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, commands.ErrFileIsEmpty)
	assert.Contains(t, err.Error(), ".pdf")
}

func TestImportCatalogCommandHandler_Handle_Suppliers(t *testing.T) {
	ctx := t.Context()
	data := []byte("ignored by the mock decoder")
	cmd, err := commands.NewImportCatalogCommand(services.TargetSuppliers, "proveedores.XLSX", data)
	require.NoError(t, err)

	decoder := new(MockSpreadsheetDecoder)
	decoder.On("Decode", "proveedores.XLSX", data).Return(services.Sheet{
		Headers: []string{"Clave", "Razón social", "Correo"},
		Rows: [][]string{
			{"sup1", "Cotton Kings", "sales@cottonkings.com"},
			{"sup9", "Toallas del Norte", "ventas@norte.mx"},
			{"", "", ""},
		},
	}, nil).Once()

	suppliers := new(MockSupplierRepository)
	suppliers.On("Exists", ctx, "sup1").Return(true, nil).Once()
	suppliers.On("Exists", ctx, "sup9").Return(false, nil).Once()
	suppliers.On("Add", ctx, mock.AnythingOfType("*supplier.Supplier")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(new(MockProductRepository)).Once()
	uow.On("SupplierRepository").Return(suppliers).Once()
	uow.On("CustomerRepository").Return(new(MockCustomerRepository)).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewImportCatalogCommandHandler(factory, decoder)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.CatalogImportResult{Imported: 1, Existing: 1}, res)
	suppliers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestImportCatalogCommandHandler_Handle_EmptySheet(t *testing.T) {
	ctx := t.Context()
	data := []byte("id,name\n")
	cmd, _ := commands.NewImportCatalogCommand(services.TargetProducts, "products.csv", data)

	decoder := new(MockSpreadsheetDecoder)
	decoder.On("Decode", "products.csv", data).Return(services.Sheet{Headers: []string{"id", "name"}}, nil).Once()
	factory := new(MockUoWFactory)

	h := commands.NewImportCatalogCommandHandler(factory, decoder)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}
