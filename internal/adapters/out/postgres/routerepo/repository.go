package routerepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRouteRepository implements RouteRepository using GORM. Carriers are
// read through it because routes are the only thing that uses them.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID draws the next route number from route_number_seq.
func (r *GormRouteRepository) NextID(ctx context.Context) (string, error) {
	var n int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('route_number_seq')").Scan(&n).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("R-%d", n), nil
}

func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update stores the route status. Stops are fixed once the route is planned.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RouteDTO{}).Where("id = ?", aggregate.ID()).
		Updates(map[string]any{"truck_id": aggregate.TruckID(), "status": string(aggregate.Status())})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get locks the route row until the transaction ends.
func (r *GormRouteRepository) Get(ctx context.Context, id string) (*route.Route, error) {
	var dto RouteDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRouteRepository) GetAllCarriers(ctx context.Context) ([]*route.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	carriers := make([]*route.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := carrierToDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}
	return carriers, nil
}
