package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories
// returned after Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	CustomerRepository() CustomerRepository
	SupplierRepository() SupplierRepository
	LotRepository() LotRepository
	LocationRepository() LocationRepository
	RouteRepository() RouteRepository
}

// DatabaseResetter wipes all warehouse data and reloads the seed catalog.
type DatabaseResetter interface {
	Reset(ctx context.Context) error
}
