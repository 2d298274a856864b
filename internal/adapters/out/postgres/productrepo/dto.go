package productrepo

import (
	"logistics/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID             string          `gorm:"primaryKey"`
	Name           string          `gorm:"not null"`
	Family         string          `gorm:"not null"`
	Type           string          `gorm:"not null"`
	Dimensions     string          `gorm:"not null"`
	Weight         float64         `gorm:"not null"`
	LotNumber      string          `gorm:"not null"`
	ProductionDate string          `gorm:"not null"`
	Specifications string          `gorm:"not null"`
	Stock          int             `gorm:"not null"`
	Cost           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SupplierID     string          `gorm:"not null"`
	Aisle          string          `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	attrs := p.Attributes()
	return ProductDTO{
		ID:             p.ID(),
		Name:           p.Name(),
		Family:         attrs.Family,
		Type:           attrs.Type,
		Dimensions:     attrs.Dimensions,
		Weight:         attrs.Weight,
		LotNumber:      attrs.LotNumber,
		ProductionDate: attrs.ProductionDate,
		Specifications: attrs.Specifications,
		Stock:          p.Stock(),
		Cost:           p.Cost(),
		SupplierID:     p.SupplierID(),
		Aisle:          p.Aisle(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		product.Attributes{
			Family:         dto.Family,
			Type:           dto.Type,
			Dimensions:     dto.Dimensions,
			Weight:         dto.Weight,
			LotNumber:      dto.LotNumber,
			ProductionDate: dto.ProductionDate,
			Specifications: dto.Specifications,
		},
		dto.Stock,
		dto.Cost,
		dto.SupplierID,
		dto.Aisle,
	)
}
