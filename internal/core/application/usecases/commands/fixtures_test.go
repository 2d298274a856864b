package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func lineItems(t *testing.T, id string, qty int) kernel.Items {
	t.Helper()
	item, err := kernel.NewLineItem(id, qty)
	require.NoError(t, err)
	return kernel.Items{item}
}

func towel(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct("70LVL2GMC7200", "TOALLA TALISSA BLANCA", product.Attributes{
		Family: "TALISSA", Type: "baño", Dimensions: "70x140", Weight: 0.6,
	}, stock, decimal.RequireFromString("85.50"), "sup1", "S1-P1")
	require.NoError(t, err)
	return p
}

func cust1(t *testing.T, specs customer.Specs) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("cust1", "Hoteles Caribe", "compras@caribe.mx", "Blvd. Kukulcan Km 12, Cancún, QROO",
		[]customer.Destination{
			{ID: "dest1_1", Name: "Hotel Zona Hotelera", Address: "Blvd. Kukulcan Km 12, Cancún", Zone: "Sureste", Type: customer.Branch},
			{ID: "dest1_2", Name: "Bodega Playa", Address: "Calle 5ta Avenida, Playa del Carmen", Zone: "Sureste", Type: customer.Warehouse},
		}, specs)
	require.NoError(t, err)
	return c
}

func pendingOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o, err := order.NewSaleOrder(id, "cust1",
		order.Destination{ID: "dest1_1", Address: "Blvd. Kukulcan Km 12, Cancún"},
		lineItems(t, "70LVL2GMC7200", 500), decimal.NewFromInt(64125), order.FreightCompany, "",
		time.Date(2023, 10, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func packedOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o := pendingOrder(t, id)
	_, err := o.AddBundle(25, lineItems(t, "70LVL2GMC7200", 500))
	require.NoError(t, err)
	return o
}

func lockedOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o := packedOrder(t, id)
	_, err := o.LockPackingList(customer.DefaultSpecs(), true)
	require.NoError(t, err)
	return o
}

func invoicedOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o := lockedOrder(t, id)
	require.NoError(t, o.Invoice("xml-1"))
	return o
}

func customsLot(t *testing.T) *inbound.Lot {
	t.Helper()
	l, err := inbound.NewLot("PED-239901", "sup1", "2023-10-25", lineItems(t, "70LVL2GMC7200", 5000))
	require.NoError(t, err)
	return l
}
