// Package ports defines the contracts between the warehouse domain and the
// infrastructure: repositories, the unit of work and the external
// collaborators (advisor, event bus, spreadsheet endpoints).
package ports

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/supplier"
	"logistics/internal/core/domain/model/warehouse"
)

// OrderRepository defines the persistence contract for order aggregates,
// bundles and address history included.
type OrderRepository interface {
	// NextID issues the next sale order identifier (SO-<n>) from a
	// monotonic storage sequence.
	NextID(ctx context.Context) (string, error)

	// Add persists a new order. The order must be valid and not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an ObjectNotFoundError.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAllInStatus returns every order in the status, oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAll returns every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id string) (*product.Product, error)
	GetAll(ctx context.Context) ([]*product.Product, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id string) (*customer.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// SupplierRepository defines the persistence contract for suppliers.
type SupplierRepository interface {
	Add(ctx context.Context, aggregate *supplier.Supplier) error
	Exists(ctx context.Context, id string) (bool, error)
}

// LotRepository defines the persistence contract for inbound lots.
type LotRepository interface {
	Add(ctx context.Context, aggregate *inbound.Lot) error
	Update(ctx context.Context, aggregate *inbound.Lot) error
	Get(ctx context.Context, id string) (*inbound.Lot, error)
	GetAll(ctx context.Context) ([]*inbound.Lot, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// LocationRepository defines the persistence contract for storage locations.
type LocationRepository interface {
	Update(ctx context.Context, aggregate *warehouse.Location) error
	Get(ctx context.Context, id string) (*warehouse.Location, error)
}

// RouteRepository defines the persistence contract for routes and the
// carriers they hand parcels to.
type RouteRepository interface {
	// NextID issues the next route identifier (R-<n>).
	NextID(ctx context.Context) (string, error)
	Add(ctx context.Context, aggregate *route.Route) error
	Update(ctx context.Context, aggregate *route.Route) error
	Get(ctx context.Context, id string) (*route.Route, error)

	// GetAllCarriers returns every carrier, active or not.
	GetAllCarriers(ctx context.Context) ([]*route.Carrier, error)
}
