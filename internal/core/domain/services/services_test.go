package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func lineItems(t *testing.T, id string, qty int) kernel.Items {
	t.Helper()
	item, err := kernel.NewLineItem(id, qty)
	require.NoError(t, err)
	return kernel.Items{item}
}

// invoicedOrder builds an order that already went through packing and invoicing.
func invoicedOrder(t *testing.T, id string, payer order.FreightPayer, carrierID, address string) *order.Order {
	t.Helper()
	o, err := order.NewSaleOrder(id, "cust2", order.Destination{ID: "dest2_1", Address: address},
		lineItems(t, "50SPA1GMC100", 10), decimal.NewFromInt(225), payer, carrierID, time.Now())
	require.NoError(t, err)
	_, err = o.AddBundle(1, lineItems(t, "50SPA1GMC100", 10))
	require.NoError(t, err)
	_, err = o.LockPackingList(customer.DefaultSpecs(), true)
	require.NoError(t, err)
	require.NoError(t, o.Invoice("xml-uuid"))
	return o
}

func carriers(t *testing.T) []*route.Carrier {
	t.Helper()
	car2, err := route.NewCarrier("car2", "Paquetexpress", route.Parcel, 45,
		[]route.Terminal{{Name: "Term. Vallejo", Address: "Poniente 140, Vallejo", Zone: "Centro"}}, route.CarrierActive)
	require.NoError(t, err)
	car3, err := route.NewCarrier("car3", "Tresguerras", route.Freight, 120,
		[]route.Terminal{{Name: "Term. Iztapalapa", Address: "Eje 6 Sur, Iztapalapa", Zone: "Oriente"}}, route.CarrierSuspended)
	require.NoError(t, err)
	return []*route.Carrier{car2, car3}
}
