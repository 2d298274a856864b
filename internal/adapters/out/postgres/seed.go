package postgres

import (
	"errors"
	"fmt"
	"math"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/supplier"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/shopspring/decimal"
)

// seedCatalog is the demo data set a factory reset reloads.
type seedCatalog struct {
	suppliers []*supplier.Supplier
	products  []*product.Product
	customers []*customer.Customer
	locations []*warehouse.Location
	carriers  []*route.Carrier
	lots      []*inbound.Lot
	routes    []*route.Route
	orders    []*order.Order
}

var seedHalls = []string{"S1", "S2", "S3", "S4", "S5"}

const (
	seedLocationsPerHall = 10
	seedLocationCapacity = 1000
	seedLocationStock    = 200
)

func newSeedCatalog() (seedCatalog, error) {
	var c seedCatalog
	var err error

	c.suppliers, err = seedSuppliers()
	if err != nil {
		return seedCatalog{}, err
	}
	c.products, err = seedProducts()
	if err != nil {
		return seedCatalog{}, err
	}
	c.customers, err = seedCustomers()
	if err != nil {
		return seedCatalog{}, err
	}
	c.locations, err = seedLocations()
	if err != nil {
		return seedCatalog{}, err
	}
	c.carriers, err = seedCarriers()
	if err != nil {
		return seedCatalog{}, err
	}
	c.lots, err = seedLots()
	if err != nil {
		return seedCatalog{}, err
	}
	c.routes, err = seedRoutes()
	if err != nil {
		return seedCatalog{}, err
	}
	c.orders, err = seedOrders()
	if err != nil {
		return seedCatalog{}, err
	}
	return c, nil
}

func seedSuppliers() ([]*supplier.Supplier, error) {
	s1, err1 := supplier.NewSupplier("sup1", "Cotton Kings Intl", "sales@cottonkings.com")
	s2, err2 := supplier.NewSupplier("sup2", "Pakistan Textiles Ltd", "export@paktextiles.com")
	if err := errors.Join(err1, err2); err != nil {
		return nil, err
	}
	return []*supplier.Supplier{s1, s2}, nil
}

func seedProducts() ([]*product.Product, error) {
	rows := []struct {
		id, name   string
		attrs      product.Attributes
		stock      int
		cost       string
		supplierID string
		aisle      string
	}{
		{"70LVL2GMC7200", "TALISSA BAÑO BLANCO", product.Attributes{Family: "TALISSA", Type: "baño", Dimensions: "70x140", Weight: 0.6}, 5000, "85.50", "sup1", "S1-P3"},
		{"70LVL2GMC7201", "TALISSA MANOS BLANCO", product.Attributes{Family: "TALISSA", Type: "manos", Dimensions: "40x70", Weight: 0.2}, 8000, "35.20", "sup1", "S1-P3"},
		{"80LH3GMC9000", "LH ALBERCA RAYAS", product.Attributes{Family: "LH", Type: "alberca", Dimensions: "90x160", Weight: 0.85}, 2000, "120.00", "sup2", "S2-P1"},
		{"50SPA1GMC100", "SPA FACIAL PREMIUM", product.Attributes{Family: "SPA", Type: "facial", Dimensions: "30x30", Weight: 0.05}, 12000, "15.00", "sup1", "S3-P5"},
	}

	products := make([]*product.Product, 0, len(rows))
	for _, r := range rows {
		p, err := product.NewProduct(r.id, r.name, r.attrs, r.stock, decimal.RequireFromString(r.cost), r.supplierID, r.aisle)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func seedCustomers() ([]*customer.Customer, error) {
	hyatt, err1 := customer.NewCustomer("cust1", "Grand Hyatt Cancún", "compras@hyatt.com", "Blvd. Kukulcan Km 12, Cancún, QROO",
		[]customer.Destination{
			{ID: "dest1_1", Name: "Hotel Principal", Address: "Blvd. Kukulcan Km 12, Cancún", Zone: "Sureste", Type: customer.Branch},
			{ID: "dest1_2", Name: "Bodega Playa", Address: "Calle 5ta Avenida, Playa del Carmen", Zone: "Sureste", Type: customer.Warehouse},
		},
		customer.Specs{
			RequiresPortalUpload:           true,
			PortalURL:                      "suppliers.hyatt.com",
			RequiresPurchaseOrderOnInvoice: true,
			AcceptedDocType:                customer.DocInvoice,
		})
	distex, err2 := customer.NewCustomer("cust2", "Distribuidora Textil del Centro", "logistica@distex.mx", "Av. Reforma 222, CDMX",
		[]customer.Destination{
			{ID: "dest2_1", Name: "Cedis Vallejo", Address: "Norte 45 #100, Vallejo, CDMX", Zone: "Centro", Type: customer.Warehouse},
			{ID: "dest2_2", Name: "Tienda Centro", Address: "Isabel la Catolica 55, Centro, CDMX", Zone: "Centro", Type: customer.Branch},
		},
		customer.Specs{AcceptedDocType: customer.DocInvoiceAndRemittance})
	cabos, err3 := customer.NewCustomer("cust3", "Hotel Boutique Los Cabos", "admin@loscabos.com", "Carr. Transpeninsular Km 5, Los Cabos, BCS",
		[]customer.Destination{
			{ID: "dest3_1", Name: "Recepción Hotel", Address: "Carr. Transpeninsular Km 5, BCS", Zone: "Pacifico", Type: customer.Branch},
		},
		customer.Specs{
			RequiresPurchaseOrderOnInvoice: true,
			RequiresInsurancePolicy:        true,
			AcceptedDocType:                customer.DocRemittance,
		})
	if err := errors.Join(err1, err2, err3); err != nil {
		return nil, err
	}
	return []*customer.Customer{hyatt, distex, cabos}, nil
}

// seedLocations lays out every hall as racks of two positions, Alto above
// Bajo. Every third position already holds bath towels.
func seedLocations() ([]*warehouse.Location, error) {
	locations := make([]*warehouse.Location, 0, len(seedHalls)*seedLocationsPerHall)
	for _, hall := range seedHalls {
		for i := 1; i <= seedLocationsPerHall; i++ {
			level := "Alto"
			if i%2 == 0 {
				level = "Bajo"
			}
			var items kernel.Items
			if i%3 == 0 {
				item, err := kernel.NewLineItem("70LVL2GMC7200", seedLocationStock)
				if err != nil {
					return nil, err
				}
				items = kernel.Items{item}
			}
			rack := fmt.Sprintf("R-%d", int(math.Ceil(float64(i)/2)))
			loc, err := warehouse.NewLocation(fmt.Sprintf("%s-U%02d", hall, i), hall, rack, level, seedLocationCapacity, items)
			if err != nil {
				return nil, err
			}
			locations = append(locations, loc)
		}
	}
	return locations, nil
}

func seedCarriers() ([]*route.Carrier, error) {
	own, err1 := route.NewCarrier("car1", "Flota Propia", route.OwnFleet, 0, nil, route.CarrierActive)
	parcel, err2 := route.NewCarrier("car2", "Paquetexpress", route.Parcel, 45,
		[]route.Terminal{{Name: "Term. Vallejo", Address: "Poniente 140, Vallejo", Zone: "Centro"}}, route.CarrierActive)
	freight, err3 := route.NewCarrier("car3", "Tresguerras", route.Freight, 120,
		[]route.Terminal{{Name: "Term. Iztapalapa", Address: "Eje 6 Sur, Iztapalapa", Zone: "Oriente"}}, route.CarrierSuspended)
	if err := errors.Join(err1, err2, err3); err != nil {
		return nil, err
	}
	return []*route.Carrier{own, parcel, freight}, nil
}

func seedLots() ([]*inbound.Lot, error) {
	bath, err1 := kernel.NewLineItem("70LVL2GMC7200", 5000)
	pool, err2 := kernel.NewLineItem("80LH3GMC9000", 2000)
	if err := errors.Join(err1, err2); err != nil {
		return nil, err
	}

	atCustoms, err1 := inbound.RestoreLot("PED-239901", "sup1", "2023-10-25", inbound.Customs, kernel.Items{bath})
	atDock, err2 := inbound.RestoreLot("PED-239902", "sup2", "2023-10-26", inbound.Receiving, kernel.Items{pool})
	if err := errors.Join(err1, err2); err != nil {
		return nil, err
	}
	return []*inbound.Lot{atCustoms, atDock}, nil
}

func seedRoutes() ([]*route.Route, error) {
	r, err := route.RestoreRoute("R-4921", "T-02", route.InTransit, []route.Stop{{
		OrderID:          "SO-1001",
		Address:          "Blvd. Kukulcan Km 12, Cancún",
		Type:             route.ClientDelivery,
		Sequence:         1,
		EstimatedArrival: "14:00 PM",
		WaitMinutes:      route.ClientDeliveryWait,
	}})
	if err != nil {
		return nil, err
	}
	return []*route.Route{r}, nil
}

func seedOrders() ([]*order.Order, error) {
	mustItems := func(productID string, qty int) kernel.Items {
		li, err := kernel.NewLineItem(productID, qty)
		if err != nil {
			panic(err)
		}
		return kernel.Items{li}
	}
	mustDay := func(value string) time.Time {
		t, err := time.Parse(time.DateOnly, value)
		if err != nil {
			panic(err)
		}
		return t
	}

	var bundles []order.Bundle
	for n := 1; n <= 2; n++ {
		b, err := order.RestoreBundle("SO-1002", n, 25, mustItems("50SPA1GMC100", 500))
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}

	states := []order.State{
		{
			ID:                   "SO-1001",
			Kind:                 order.Sale,
			PartyID:              "cust1",
			Items:                mustItems("70LVL2GMC7200", 500),
			IssuedAt:             mustDay("2023-10-20"),
			Status:               order.Shipped,
			Total:                decimal.NewFromInt(42750),
			Destination:          order.Destination{ID: "dest1_1", Address: "Blvd. Kukulcan Km 12, Cancún"},
			AddressStatus:        order.AddressOriginal,
			FreightPayer:         order.FreightClient,
			PackingListValidated: true,
			RouteID:              "R-4921",
		},
		{
			ID:                   "SO-1002",
			Kind:                 order.Sale,
			PartyID:              "cust2",
			Items:                mustItems("50SPA1GMC100", 1000),
			IssuedAt:             mustDay("2023-10-21"),
			Status:               order.Invoiced,
			Total:                decimal.NewFromInt(22500),
			Destination:          order.Destination{ID: "dest2_1", Address: "Norte 45 #100, Vallejo, CDMX"},
			AddressStatus:        order.AddressOriginal,
			FreightPayer:         order.FreightCompany,
			PackingListValidated: true,
			Bundles:              bundles,
		},
		{
			ID:            "SO-1003",
			Kind:          order.Sale,
			PartyID:       "cust3",
			Items:         mustItems("80LH3GMC9000", 150),
			IssuedAt:      mustDay("2023-10-22"),
			Status:        order.Pending,
			Total:         decimal.NewFromInt(18000),
			Destination:   order.Destination{ID: "dest3_1", Address: "Carr. Transpeninsular Km 5, Los Cabos, BCS"},
			AddressStatus: order.AddressOriginal,
			FreightPayer:  order.FreightClient,
		},
	}

	orders := make([]*order.Order, 0, len(states))
	for _, s := range states {
		o, err := order.RestoreOrder(s)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
