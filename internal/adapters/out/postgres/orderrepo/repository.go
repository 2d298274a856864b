package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

// forUpdate holds the loaded rows until the surrounding transaction ends, so
// concurrent read-modify-write cycles on one order run one after another.
var forUpdate = clause.Locking{Strength: "UPDATE"}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	state   *LoadState
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// LoadState remembers how many bundles and history entries each order had in
// storage when it was read or last written. Repositories of one unit of work
// share it.
type LoadState struct {
	stored map[string]childCounts
}

type childCounts struct {
	bundles int
	history int
}

func NewLoadState() *LoadState {
	return &LoadState{stored: make(map[string]childCounts)}
}

func (s *LoadState) remember(dto OrderDTO) {
	s.stored[dto.ID] = childCounts{bundles: len(dto.Bundles), history: len(dto.AddressHistory)}
}

// NewGormOrderRepository creates a new GORM order repository with its own
// load state.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return NewGormOrderRepositoryWithState(db, tracker, NewLoadState())
}

func NewGormOrderRepositoryWithState(db *gorm.DB, tracker aggregateTracker, state *LoadState) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		state:   state,
	}
}

// NextID draws the next sale order number from order_number_seq.
func (r *GormOrderRepository) NextID(ctx context.Context) (string, error) {
	var n int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('order_number_seq')").Scan(&n).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("SO-%d", n), nil
}

// Add saves a new order with its bundles and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	r.state.remember(dto)

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every order column and inserts the bundles and history
// entries added since the order was read. Neither child collection ever
// shrinks. A bundle or history number that is already stored is a conflict.
// An order this repository never read counts as having no stored children.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("Bundles", "AddressHistory").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	stored := r.state.stored[dto.ID]
	if bundles := dto.Bundles[min(stored.bundles, len(dto.Bundles)):]; len(bundles) > 0 {
		if err := db.Create(&bundles).Error; err != nil {
			return conflictOnDuplicate(err)
		}
	}
	if history := dto.AddressHistory[min(stored.history, len(dto.AddressHistory)):]; len(history) > 0 {
		if err := db.Create(&history).Error; err != nil {
			return conflictOnDuplicate(err)
		}
	}
	r.state.remember(dto)

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID and locks its row for the rest of the
// transaction.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withChildren(ctx).Clauses(forUpdate).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}
	r.state.remember(dto)

	return toDomain(dto)
}

// GetAllInStatus retrieves and locks the orders in status, oldest first.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(r.withChildren(ctx).Clauses(forUpdate).Where("status = ?", status.String()))
}

// GetAll retrieves every order, oldest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.withChildren(ctx))
}

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Bundles", func(db *gorm.DB) *gorm.DB { return db.Order("number") }).
		Preload("AddressHistory", func(db *gorm.DB) *gorm.DB { return db.Order("seq") })
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("issued_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		r.state.remember(dto)
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func conflictOnDuplicate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewConflictError(err)
	}
	return err
}
