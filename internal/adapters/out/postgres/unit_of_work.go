// Package postgres provides the GORM-based Unit of Work over the warehouse
// tables. A unit of work hands out repositories bound to its transaction and
// records every aggregate they add or update.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.ProductRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// After a successful commit every tracked order is announced on the event
// bus. Publishing is best effort: the data is already committed, so a failed
// publish is logged and the commit still succeeds.
//
// Each UnitOfWork instance is meant for one goroutine and one business
// operation. Create a new one per command.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/locationrepo"
	"logistics/internal/adapters/out/postgres/lotrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/productrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/supplierrepo"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewGormUnitOfWorkFactory creates a factory. publisher receives the order
// events after each commit.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Create produces a fresh unit of work with its own transaction state and
// tracking list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		now:               f.now,
		trackedAggregates: make([]trackedAggregate, 0),
		orderState:        orderrepo.NewLoadState(),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates changed within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	now               func() time.Time
	trackedAggregates []trackedAggregate
	orderState        *orderrepo.LoadState
}

// Begin opens the transaction. Calling it again while a transaction is open
// does nothing; transactions are never nested.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the changes permanent and then publishes an OrderChanged
// event for every order touched in the transaction.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the changes and the tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open, which is the
// normal outcome of the deferred rollback after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.orderState = orderrepo.NewLoadState()
	return err
}

// OrderRepository returns an order repository bound to the open transaction,
// or to the pool when none is open. All order repositories of the unit of
// work share what they have read.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepositoryWithState(uow.conn(), uow, uow.orderState)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SupplierRepository() ports.SupplierRepository {
	return supplierrepo.NewGormSupplierRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LotRepository() ports.LotRepository {
	return lotrepo.NewGormLotRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return locationrepo.NewGormLocationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate as changed within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// publishTracked sends one event per distinct order, carrying its final state.
func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if uow.publisher == nil {
		return
	}

	latest := make(map[string]*order.Order)
	var ids []string
	for _, t := range tracked {
		o, ok := t.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if _, seen := latest[t.ID]; !seen {
			ids = append(ids, t.ID)
		}
		latest[t.ID] = o
	}

	occurredAt := uow.now().UTC()
	for _, id := range ids {
		o := latest[id]
		event := ports.OrderChangedEvent{
			OrderID:              o.ID(),
			Kind:                 string(o.Kind()),
			Status:               o.Status().String(),
			AddressStatus:        string(o.AddressStatus()),
			PackingListValidated: o.IsPackingListValidated(),
			InvoiceRef:           o.InvoiceRef(),
			RouteID:              o.RouteID(),
			OccurredAt:           occurredAt,
		}
		if err := uow.publisher.PublishOrderChanged(ctx, event); err != nil {
			uow.logger.ErrorContext(ctx, "Failed to publish order event", "order_id", id, "error", err)
		}
	}
}
