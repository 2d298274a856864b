package http

import (
	"io"
	"net/http"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type NewProduct struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Family         string  `json:"family"`
	Type           string  `json:"type"`
	Dimensions     string  `json:"dimensions"`
	Weight         float64 `json:"weight"`
	LotNumber      string  `json:"lotNumber"`
	ProductionDate string  `json:"productionDate"`
	Specifications string  `json:"specifications"`
	Stock          int     `json:"stock"`
	Cost           string  `json:"cost"`
	SupplierID     string  `json:"supplierId"`
	Aisle          string  `json:"aisle"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type StockUpdate struct {
	Movement           string `json:"movement"`
	Quantity           int    `json:"quantity"`
	CustomerID         string `json:"customerId"`
	DestinationID      string `json:"destinationId"`
	FreightPayer       string `json:"freightPayer"`
	PreferredCarrierID string `json:"preferredCarrierId"`
}

type StockUpdateResponse struct {
	Stock   int    `json:"stock"`
	OrderID string `json:"orderId,omitempty"`
}

type CatalogImportResponse struct {
	Imported int `json:"imported"`
	Existing int `json:"existing"`
	Rejected int `json:"rejected"`
}

type InboundImportRequest struct {
	URL string `json:"url"`
}

type InboundImportResponse struct {
	Created      int `json:"created"`
	Existing     int `json:"existing"`
	IgnoredLines int `json:"ignoredLines"`
}

type PutAwayRequest struct {
	LocationID string `json:"locationId"`
}

// maxUploadSize bounds catalog spreadsheets read into memory.
const maxUploadSize = 10 << 20

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve products")
	}
	return ctx.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req NewProduct
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cost := decimal.Zero
	if strings.TrimSpace(req.Cost) != "" {
		var err error
		if cost, err = decimal.NewFromString(req.Cost); err != nil {
			return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("cost", err))
		}
	}

	cmd, err := commands.NewCreateProductCommand(
		req.ID,
		req.Name,
		product.Attributes{
			Family:         req.Family,
			Type:           req.Type,
			Dimensions:     req.Dimensions,
			Weight:         req.Weight,
			LotNumber:      req.LotNumber,
			ProductionDate: req.ProductionDate,
			Specifications: req.Specifications,
		},
		req.Stock,
		cost,
		req.SupplierID,
		req.Aisle,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create product")
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateStock handles POST /api/v1/products/:productId/stock. A removal for
// a customer answers with the id of the sale order it created.
func (s *Server) UpdateStock(ctx echo.Context) error {
	var req StockUpdate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateStockCommand(
		ctx.Param("productId"),
		req.Quantity,
		commands.Movement(req.Movement),
		req.CustomerID,
		req.DestinationID,
		order.FreightPayer(req.FreightPayer),
		req.PreferredCarrierID,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	res, err := s.h.UpdateStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to update stock")
	}
	return ctx.JSON(http.StatusOK, StockUpdateResponse{Stock: res.Stock, OrderID: res.OrderID})
}

// ImportCatalog handles POST /api/v1/catalog/:target/import with the
// spreadsheet in the "file" form field.
func (s *Server) ImportCatalog(ctx echo.Context) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsRequiredError("file"))
	}
	src, err := file.Open()
	if err != nil {
		return badRequest(ctx, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewImportCatalogCommand(services.CatalogTarget(ctx.Param("target")), file.Filename, data)
	if err != nil {
		return badRequest(ctx, err)
	}

	res, err := s.h.ImportCatalog.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to import catalog")
	}
	return ctx.JSON(http.StatusOK, CatalogImportResponse{Imported: res.Imported, Existing: res.Existing, Rejected: res.Rejected})
}

// ListInboundLots handles GET /api/v1/inbound-lots.
func (s *Server) ListInboundLots(ctx echo.Context) error {
	lots, err := s.h.ListInboundLots.Handle(ctx.Request().Context(), queries.NewListInboundLotsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve inbound lots")
	}
	return ctx.JSON(http.StatusOK, lots)
}

// ImportInboundCSV handles POST /api/v1/inbound-lots/import. Without a url
// the configured receiving sheet is read.
func (s *Server) ImportInboundCSV(ctx echo.Context) error {
	var req InboundImportRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if strings.TrimSpace(req.URL) == "" {
		req.URL = s.inboundCSVURL
	}

	cmd, err := commands.NewImportInboundCSVCommand(req.URL)
	if err != nil {
		return badRequest(ctx, err)
	}

	res, err := s.h.ImportInboundCSV.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			s.logger.ErrorContext(ctx.Request().Context(), "Failed to import inbound lots", "error", err)
			return ctx.JSON(http.StatusBadGateway, Error{Code: http.StatusBadGateway, Message: "Failed to import inbound lots"})
		}
		return s.fail(ctx, err, "Failed to import inbound lots")
	}
	return ctx.JSON(http.StatusOK, InboundImportResponse{Created: res.Created, Existing: res.Existing, IgnoredLines: res.IgnoredLines})
}

// ClearLot handles POST /api/v1/inbound-lots/:lotId/clearance.
func (s *Server) ClearLot(ctx echo.Context) error {
	cmd, err := commands.NewClearLotCommand(ctx.Param("lotId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.ClearLot.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to clear lot")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PutAwayLot handles POST /api/v1/inbound-lots/:lotId/put-away.
func (s *Server) PutAwayLot(ctx echo.Context) error {
	var req PutAwayRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewPutAwayLotCommand(ctx.Param("lotId"), req.LocationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.PutAwayLot.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to put away lot")
	}
	return ctx.NoContent(http.StatusNoContent)
}
