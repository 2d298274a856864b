package services

import (
	"fmt"
	"strconv"
	"strings"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/supplier"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CatalogTarget selects which master data a spreadsheet holds.
type CatalogTarget string

const (
	TargetProducts  CatalogTarget = "products"
	TargetSuppliers CatalogTarget = "suppliers"
	TargetCustomers CatalogTarget = "customers"
)

func (t CatalogTarget) Validate() error {
	switch t {
	case TargetProducts, TargetSuppliers, TargetCustomers:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("import target is invalid", fmt.Errorf("%q is not products, suppliers or customers", string(t)))
	}
}

// Sheet is the first worksheet of an uploaded file: a header row and the
// data rows below it.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// CatalogBatch holds the records mapped from one sheet. Rows that still fail
// validation after defaults are applied are counted in Rejected.
type CatalogBatch struct {
	Products  []*product.Product
	Suppliers []*supplier.Supplier
	Customers []*customer.Customer
	Rejected  int
}

// Len is the number of mapped records.
func (b CatalogBatch) Len() int {
	return len(b.Products) + len(b.Suppliers) + len(b.Customers)
}

var (
	productFields = map[string][]string{
		"id":         {"id", "sku", "codigo", "code", "clave"},
		"name":       {"name", "nombre", "producto", "descripcio", "articulo", "item", "modelo"},
		"stock":      {"stock", "cantidad", "qty", "existencia", "inventario", "disponible"},
		"cost":       {"cost", "costo", "precio", "valor", "price", "unitario"},
		"family":     {"family", "familia", "marca", "linea"},
		"type":       {"type", "tipo", "categoria", "uso"},
		"dimensions": {"dimensions", "dimensiones", "medidas", "tamaño", "talla"},
		"weight":     {"weight", "peso", "kg", "masa"},
		"aisle":      {"aisle", "pasillo", "ubicacion", "rack", "salon", "zona", "area", "bodega"},
		"supplierId": {"supplierId", "proveedor", "supplier"},
	}
	supplierFields = map[string][]string{
		"id":      {"id", "codigo", "clave"},
		"name":    {"name", "nombre", "empresa", "razon social", "proveedor"},
		"contact": {"contact", "contacto", "email", "telefono", "correo"},
	}
	customerFields = map[string][]string{
		"id":          {"id", "codigo"},
		"name":        {"name", "nombre", "cliente", "razon social"},
		"email":       {"email", "correo", "contacto"},
		"mainAddress": {"address", "direccion", "domicilio", "calle"},
	}
)

// CatalogMapper maps loosely formatted spreadsheets onto catalog records,
// filling placeholders for whatever the sheet does not carry.
type CatalogMapper struct {
	newID func(prefix string) string
}

func NewCatalogMapper() CatalogMapper {
	return CatalogMapper{newID: kernel.NewReference}
}

// Map converts every data row of the sheet. An empty sheet is rejected.
func (m CatalogMapper) Map(target CatalogTarget, sheet Sheet) (CatalogBatch, error) {
	if err := target.Validate(); err != nil {
		return CatalogBatch{}, err
	}
	if len(sheet.Rows) == 0 {
		return CatalogBatch{}, errs.NewValueIsRequiredError("sheet rows")
	}

	var fields map[string][]string
	switch target {
	case TargetProducts:
		fields = productFields
	case TargetSuppliers:
		fields = supplierFields
	default:
		fields = customerFields
	}

	matcher := NewHeaderMatcher(sheet.Headers)
	columns := make(map[string]int, len(fields))
	for field, synonyms := range fields {
		columns[field] = matcher.Find(synonyms...)
	}

	var batch CatalogBatch
	for _, raw := range sheet.Rows {
		row := cells{raw: raw, columns: columns}
		if row.blank() {
			continue
		}

		var err error
		switch target {
		case TargetProducts:
			var p *product.Product
			p, err = m.product(row)
			if err == nil {
				batch.Products = append(batch.Products, p)
			}
		case TargetSuppliers:
			var s *supplier.Supplier
			s, err = supplier.NewSupplier(
				row.text("id", m.newID("SUP")),
				row.text("name", "Proveedor Nuevo"),
				row.text("contact", "N/A"),
			)
			if err == nil {
				batch.Suppliers = append(batch.Suppliers, s)
			}
		default:
			var c *customer.Customer
			c, err = customer.NewCustomer(
				row.text("id", m.newID("CUST")),
				row.text("name", "Cliente Nuevo"),
				row.text("email", "sin@correo.com"),
				row.text("mainAddress", "Dirección Pendiente"),
				nil,
				customer.DefaultSpecs(),
			)
			if err == nil {
				batch.Customers = append(batch.Customers, c)
			}
		}
		if err != nil {
			batch.Rejected++
		}
	}
	return batch, nil
}

func (m CatalogMapper) product(row cells) (*product.Product, error) {
	cost, err := decimal.NewFromString(row.number("cost"))
	if err != nil || cost.IsNegative() {
		cost = decimal.Zero
	}

	stock := 0
	if v, err := strconv.ParseFloat(row.number("stock"), 64); err == nil && v > 0 {
		stock = int(v)
	}

	weight := 0.5
	if v, err := strconv.ParseFloat(row.number("weight"), 64); err == nil && v > 0 {
		weight = v
	}

	return product.NewProduct(
		row.text("id", m.newID("IMP")),
		row.text("name", "Producto Sin Nombre"),
		product.Attributes{
			Family:     row.text("family", "General"),
			Type:       row.text("type", "Estándar"),
			Dimensions: row.text("dimensions", "N/A"),
			Weight:     weight,
		},
		stock,
		cost,
		row.text("supplierId", "unknown"),
		row.text("aisle", "Recepción"),
	)
}

type cells struct {
	raw     []string
	columns map[string]int
}

func (c cells) blank() bool {
	for _, v := range c.raw {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (c cells) text(field, fallback string) string {
	idx, ok := c.columns[field]
	if !ok || idx < 0 || idx >= len(c.raw) {
		return fallback
	}
	if v := strings.TrimSpace(c.raw[idx]); v != "" {
		return v
	}
	return fallback
}

// number strips currency symbols and thousands separators, returning "0"
// when the cell is missing.
func (c cells) number(field string) string {
	v := c.text(field, "0")
	v = strings.NewReplacer("$", "", ",", "", " ", "").Replace(v)
	if v == "" {
		return "0"
	}
	return v
}
