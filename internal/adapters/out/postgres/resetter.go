package postgres

import (
	"context"
	"fmt"

	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/locationrepo"
	"logistics/internal/adapters/out/postgres/lotrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/productrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/supplierrepo"

	"gorm.io/gorm"
)

const truncateAll = `TRUNCATE TABLE route_stops, routes, carriers, locations, inbound_lots,
	order_address_changes, order_bundles, orders, products, customer_destinations, customers, suppliers`

// Resetter wipes the warehouse tables and reloads the demo catalog in one
// transaction. Order and route numbering restart after the seeded ids.
type Resetter struct {
	db *gorm.DB
}

func NewResetter(db *gorm.DB) *Resetter {
	return &Resetter{db: db}
}

func (r *Resetter) Reset(ctx context.Context) error {
	catalog, err := newSeedCatalog()
	if err != nil {
		return fmt.Errorf("build seed catalog: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			truncateAll,
			"ALTER SEQUENCE order_number_seq RESTART WITH 1004",
			"ALTER SEQUENCE route_number_seq RESTART WITH 4922",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return seed(ctx, tx, catalog)
	})
}

// Seed loads the demo catalog into empty tables. It is used on first start.
func (r *Resetter) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&productrepo.ProductDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog, err := newSeedCatalog()
	if err != nil {
		return fmt.Errorf("build seed catalog: %w", err)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return seed(ctx, tx, catalog)
	})
}

func seed(ctx context.Context, tx *gorm.DB, c seedCatalog) error {
	var tracker discardTracker

	suppliers := supplierrepo.NewGormSupplierRepository(tx, tracker)
	for _, s := range c.suppliers {
		if err := suppliers.Add(ctx, s); err != nil {
			return err
		}
	}
	products := productrepo.NewGormProductRepository(tx, tracker)
	for _, p := range c.products {
		if err := products.Add(ctx, p); err != nil {
			return err
		}
	}
	customers := customerrepo.NewGormCustomerRepository(tx, tracker)
	for _, cust := range c.customers {
		if err := customers.Add(ctx, cust); err != nil {
			return err
		}
	}
	lots := lotrepo.NewGormLotRepository(tx, tracker)
	for _, l := range c.lots {
		if err := lots.Add(ctx, l); err != nil {
			return err
		}
	}
	routes := routerepo.NewGormRouteRepository(tx, tracker)
	for _, rt := range c.routes {
		if err := routes.Add(ctx, rt); err != nil {
			return err
		}
	}
	orders := orderrepo.NewGormOrderRepository(tx, tracker)
	for _, o := range c.orders {
		if err := orders.Add(ctx, o); err != nil {
			return err
		}
	}

	// Locations and carriers are fixed master data with no Add in their
	// repositories.
	for _, l := range c.locations {
		dto := locationrepo.FromDomain(l)
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
	}
	for _, car := range c.carriers {
		dto := routerepo.CarrierFromDomain(car)
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
	}
	return nil
}

type discardTracker struct{}

func (discardTracker) TrackAggregate(string, any) {}
