// Package http exposes the warehouse use cases as a JSON API on echo.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers are the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	UpdateStock         commands.UpdateStockCommandHandler
	CreateProduct       commands.CreateProductCommandHandler
	ChangeOrderStatus   commands.ChangeOrderStatusCommandHandler
	CreateBundle        commands.CreateBundleCommandHandler
	ValidatePackingList commands.ValidatePackingListCommandHandler
	InvoiceOrder        commands.InvoiceOrderCommandHandler
	ApplyAddressChange  commands.ApplyAddressChangeCommandHandler
	OverrideAddress     commands.OverrideAddressCommandHandler
	ClearLot            commands.ClearLotCommandHandler
	PutAwayLot          commands.PutAwayLotCommandHandler
	ImportInboundCSV    commands.ImportInboundCSVCommandHandler
	ImportCatalog       commands.ImportCatalogCommandHandler
	ExportSheets        commands.ExportSheetsCommandHandler
	PlanRoute           commands.PlanRouteCommandHandler
	AdvanceRoute        commands.AdvanceRouteCommandHandler
	ResetDatabase       commands.ResetDatabaseCommandHandler

	// Query handlers
	ListOrders         queries.ListOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetPackingList     queries.GetPackingListQueryHandler
	GetInvoice         queries.GetInvoiceQueryHandler
	GetPurchaseHistory queries.GetPurchaseHistoryQueryHandler
	ListProducts       queries.ListProductsQueryHandler
	ListInboundLots    queries.ListInboundLotsQueryHandler
	GetRoute           queries.GetRouteQueryHandler
	ExportSnapshot     queries.ExportSnapshotQueryHandler
	AnalyzeEmail       queries.AnalyzeEmailQueryHandler
	AnalyzeOverstock   queries.AnalyzeOverstockQueryHandler
	StorageAdvice      queries.StorageAdviceQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h             Handlers
	inboundCSVURL string
	logger        *slog.Logger
}

// NewServer creates the HTTP server. inboundCSVURL is the receiving sheet
// imported when a request names none.
func NewServer(handlers Handlers, inboundCSVURL string, logger *slog.Logger) *Server {
	return &Server{
		h:             handlers,
		inboundCSVURL: inboundCSVURL,
		logger:        logger.With("component", "http_server"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	v1.POST("/orders/:orderId/bundles", s.CreateBundle)
	v1.GET("/orders/:orderId/packing-list", s.GetPackingList)
	v1.POST("/orders/:orderId/packing-list/validation", s.ValidatePackingList)
	v1.GET("/orders/:orderId/invoice", s.GetInvoice)
	v1.POST("/orders/:orderId/invoice", s.InvoiceOrder)
	v1.PUT("/orders/:orderId/address", s.OverrideAddress)
	v1.POST("/orders/:orderId/address/email-change", s.ApplyAddressChange)

	v1.GET("/products", s.ListProducts)
	v1.POST("/products", s.CreateProduct)
	v1.POST("/products/:productId/stock", s.UpdateStock)
	v1.POST("/catalog/:target/import", s.ImportCatalog)
	v1.GET("/suppliers/:supplierId/purchase-history", s.GetPurchaseHistory)

	v1.GET("/inbound-lots", s.ListInboundLots)
	v1.POST("/inbound-lots/import", s.ImportInboundCSV)
	v1.POST("/inbound-lots/:lotId/clearance", s.ClearLot)
	v1.POST("/inbound-lots/:lotId/put-away", s.PutAwayLot)

	v1.POST("/routes", s.PlanRoute)
	v1.GET("/routes/:routeId", s.GetRoute)
	v1.POST("/routes/:routeId/advance", s.AdvanceRoute)

	v1.POST("/advisor/email", s.AnalyzeEmail)
	v1.GET("/advisor/overstock", s.AnalyzeOverstock)
	v1.POST("/advisor/storage", s.StorageAdvice)

	v1.POST("/exports/sheets", s.ExportSheets)
	v1.GET("/snapshot", s.ExportSnapshot)
	v1.POST("/admin/reset", s.ResetDatabase)
}

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// badRequest answers a request that could not be turned into a command or
// query.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
}

// fail maps a use case error to its status code. Validation errors are 400,
// unknown ids 404 and state conflicts 409. Anything else is logged and
// answered with the given message.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
		return ctx.JSON(code, Error{Code: code, Message: message})
	}
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
