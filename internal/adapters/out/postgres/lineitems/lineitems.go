// Package lineitems maps product quantity lists to the JSONB columns that
// orders, bundles, lots and locations store them in.
package lineitems

import "logistics/internal/core/domain/model/kernel"

// DTO is one element of an items JSONB array.
type DTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func FromDomain(items kernel.Items) []DTO {
	out := make([]DTO, 0, len(items))
	for _, item := range items {
		out = append(out, DTO{ProductID: item.ProductID(), Quantity: item.Quantity()})
	}
	return out
}

func ToDomain(dtos []DTO) (kernel.Items, error) {
	out := make(kernel.Items, 0, len(dtos))
	for _, dto := range dtos {
		item, err := kernel.NewLineItem(dto.ProductID, dto.Quantity)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
