package http

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer renders the printable documents.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
		"kg":    func(w float64) string { return decimal.NewFromFloat(w).StringFixed(2) + " kg" },
		"date":  func(t time.Time) string { return t.Format("02/01/2006") },
	}
	return &TemplateRenderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// GetPackingList handles GET /api/v1/orders/:orderId/packing-list.
func (s *Server) GetPackingList(ctx echo.Context) error {
	query, err := queries.NewGetPackingListQuery(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	doc, err := s.h.GetPackingList.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to build packing list")
	}
	return respond(ctx, "packing_list.html", doc)
}

// GetInvoice handles GET /api/v1/orders/:orderId/invoice.
func (s *Server) GetInvoice(ctx echo.Context) error {
	query, err := queries.NewGetInvoiceQuery(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	doc, err := s.h.GetInvoice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to build invoice")
	}
	return respond(ctx, "invoice.html", doc)
}

// GetPurchaseHistory handles GET /api/v1/suppliers/:supplierId/purchase-history.
func (s *Server) GetPurchaseHistory(ctx echo.Context) error {
	query, err := queries.NewGetPurchaseHistoryQuery(ctx.Param("supplierId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	doc, err := s.h.GetPurchaseHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to build purchase history")
	}
	return respond(ctx, "purchase_history.html", doc)
}

// respond writes JSON unless ?format=html asks for the printable page.
func respond(ctx echo.Context, tmpl string, doc any) error {
	if ctx.QueryParam("format") == "html" {
		return ctx.Render(http.StatusOK, tmpl, doc)
	}
	return ctx.JSON(http.StatusOK, doc)
}
