package lotrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/lineitems"
	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LotDTO struct {
	ID          string          `gorm:"primaryKey"`
	SupplierID  string          `gorm:"not null"`
	ArrivalDate string          `gorm:"not null"`
	Status      string          `gorm:"not null"`
	Items       []lineitems.DTO `gorm:"type:jsonb;serializer:json;not null"`
}

func (LotDTO) TableName() string {
	return "inbound_lots"
}

// GormLotRepository implements LotRepository using GORM.
type GormLotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormLotRepository(db *gorm.DB, tracker aggregateTracker) *GormLotRepository {
	return &GormLotRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLotRepository) Add(ctx context.Context, aggregate *inbound.Lot) error {
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

func (r *GormLotRepository) Update(ctx context.Context, aggregate *inbound.Lot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LotDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lot", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLotRepository) Get(ctx context.Context, id string) (*inbound.Lot, error) {
	var dto LotDTO
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lot", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLotRepository) GetAll(ctx context.Context) ([]*inbound.Lot, error) {
	var dtos []LotDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	lots := make([]*inbound.Lot, 0, len(dtos))
	for _, dto := range dtos {
		lot, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, nil
}

func (r *GormLotRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&LotDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func fromDomain(l *inbound.Lot) LotDTO {
	return LotDTO{
		ID:          l.ID(),
		SupplierID:  l.SupplierID(),
		ArrivalDate: l.ArrivalDate(),
		Status:      string(l.Status()),
		Items:       lineitems.FromDomain(l.Items()),
	}
}

func toDomain(dto LotDTO) (*inbound.Lot, error) {
	items, err := lineitems.ToDomain(dto.Items)
	if err != nil {
		return nil, err
	}
	return inbound.RestoreLot(dto.ID, dto.SupplierID, dto.ArrivalDate, inbound.Status(dto.Status), items)
}
