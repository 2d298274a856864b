package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type ChangeStatusRequest struct {
	Action string `json:"action"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type NewBundle struct {
	Weight float64    `json:"weight"`
	Items  []LineItem `json:"items"`
}

type Bundle struct {
	ID     string     `json:"id"`
	Number int        `json:"number"`
	Weight float64    `json:"weight"`
	Items  []LineItem `json:"items"`
}

type ValidatePackingListRequest struct {
	Acknowledged bool `json:"acknowledged"`
}

type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PackingValidation struct {
	Locked   bool      `json:"locked"`
	Warnings []Warning `json:"warnings"`
}

type InvoiceResponse struct {
	InvoiceRef string `json:"invoiceRef"`
}

type OverrideAddressRequest struct {
	Address string `json:"address"`
}

type AddressChangeRequest struct {
	NewAddress string `json:"newAddress"`
	EmailID    string `json:"emailId"`
}

type AddressChangeResponse struct {
	Changed bool `json:"changed"`
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	detail, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}
	return ctx.JSON(http.StatusOK, detail)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(ctx.Param("orderId"), commands.OrderAction(req.Action))
	if err != nil {
		return badRequest(ctx, err)
	}

	status, err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to change order status")
	}
	return ctx.JSON(http.StatusOK, StatusResponse{Status: status.String()})
}

// CreateBundle handles POST /api/v1/orders/:orderId/bundles.
func (s *Server) CreateBundle(ctx echo.Context) error {
	var req NewBundle
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	items, err := toItems(req.Items)
	if err != nil {
		return badRequest(ctx, err)
	}
	cmd, err := commands.NewCreateBundleCommand(ctx.Param("orderId"), req.Weight, items)
	if err != nil {
		return badRequest(ctx, err)
	}

	bundle, err := s.h.CreateBundle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create bundle")
	}
	return ctx.JSON(http.StatusCreated, Bundle{
		ID:     bundle.ID(),
		Number: bundle.Number(),
		Weight: bundle.Weight(),
		Items:  fromItems(bundle.Items()),
	})
}

// ValidatePackingList handles POST /api/v1/orders/:orderId/packing-list/validation.
// Unacknowledged warnings come back with locked false.
func (s *Server) ValidatePackingList(ctx echo.Context) error {
	var req ValidatePackingListRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewValidatePackingListCommand(ctx.Param("orderId"), req.Acknowledged)
	if err != nil {
		return badRequest(ctx, err)
	}

	res, err := s.h.ValidatePackingList.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to validate packing list")
	}
	return ctx.JSON(http.StatusOK, toPackingValidation(res))
}

// InvoiceOrder handles POST /api/v1/orders/:orderId/invoice.
func (s *Server) InvoiceOrder(ctx echo.Context) error {
	cmd, err := commands.NewInvoiceOrderCommand(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	ref, err := s.h.InvoiceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to invoice order")
	}
	return ctx.JSON(http.StatusOK, InvoiceResponse{InvoiceRef: ref})
}

// OverrideAddress handles PUT /api/v1/orders/:orderId/address.
func (s *Server) OverrideAddress(ctx echo.Context) error {
	var req OverrideAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewOverrideAddressCommand(ctx.Param("orderId"), req.Address)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.OverrideAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to override address")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ApplyAddressChange handles POST /api/v1/orders/:orderId/address/email-change.
func (s *Server) ApplyAddressChange(ctx echo.Context) error {
	var req AddressChangeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApplyAddressChangeCommand(ctx.Param("orderId"), req.NewAddress, req.EmailID)
	if err != nil {
		return badRequest(ctx, err)
	}

	changed, err := s.h.ApplyAddressChange.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to apply address change")
	}
	return ctx.JSON(http.StatusOK, AddressChangeResponse{Changed: changed})
}

func toItems(in []LineItem) (kernel.Items, error) {
	items := make(kernel.Items, 0, len(in))
	for _, li := range in {
		item, err := kernel.NewLineItem(li.ProductID, li.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func fromItems(items kernel.Items) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, LineItem{ProductID: item.ProductID(), Quantity: item.Quantity()})
	}
	return out
}

func toPackingValidation(res order.PackingValidation) PackingValidation {
	warnings := make([]Warning, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		warnings = append(warnings, Warning{Code: string(w.Code), Message: w.Message})
	}
	return PackingValidation{Locked: res.Locked, Warnings: warnings}
}
