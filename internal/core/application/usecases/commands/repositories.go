// Package commands contains business operations that modify warehouse state.
// Every command follows the same pattern: constructor validation, a unit of
// work transaction, domain calls on the loaded aggregates and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	LotRepoFactory interface {
		LotRepository() ports.LotRepository
	}

	// OrderUoW manages transactions for commands that change one order and
	// may read its customer.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LotUoW manages transactions for inbound lot operations.
	LotUoW interface {
		TxManager
		LotRepoFactory
	}

	// LotUoWFactory creates new lot unit of work instances.
	LotUoWFactory interface {
		Create() LotUoW
	}

	// UoW manages transactions across every aggregate type.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   products := uow.ProductRepository()
	//   orders := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		ports.UnitOfWork
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
