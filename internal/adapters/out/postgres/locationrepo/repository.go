package locationrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/lineitems"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationDTO struct {
	ID         string          `gorm:"primaryKey"`
	Hall       string          `gorm:"not null"`
	Rack       string          `gorm:"not null"`
	Level      string          `gorm:"not null"`
	CapacityKg float64         `gorm:"not null"`
	Items      []lineitems.DTO `gorm:"type:jsonb;serializer:json;not null"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

// GormLocationRepository implements LocationRepository using GORM. Locations
// are fixed by the warehouse layout; only their contents change.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Update stores the location contents.
func (r *GormLocationRepository) Update(ctx context.Context, aggregate *warehouse.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LocationDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLocationRepository) Get(ctx context.Context, id string) (*warehouse.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id)
		}
		return nil, err
	}

	items, err := lineitems.ToDomain(dto.Items)
	if err != nil {
		return nil, err
	}
	return warehouse.NewLocation(dto.ID, dto.Hall, dto.Rack, dto.Level, dto.CapacityKg, items)
}

// FromDomain maps a location to its row.
func FromDomain(l *warehouse.Location) LocationDTO {
	return LocationDTO{
		ID:         l.ID(),
		Hall:       l.Hall(),
		Rack:       l.Rack(),
		Level:      l.Level(),
		CapacityKg: l.CapacityKg(),
		Items:      lineitems.FromDomain(l.Items()),
	}
}
