package supplierrepo

import (
	"context"

	"logistics/internal/core/domain/model/supplier"

	"gorm.io/gorm"
)

type SupplierDTO struct {
	ID      string `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Contact string
}

func (SupplierDTO) TableName() string {
	return "suppliers"
}

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormSupplierRepository(db *gorm.DB, tracker aggregateTracker) *GormSupplierRepository {
	return &GormSupplierRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSupplierRepository) Add(ctx context.Context, aggregate *supplier.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := SupplierDTO{ID: aggregate.ID(), Name: aggregate.Name(), Contact: aggregate.Contact()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSupplierRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&SupplierDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
