// Package orderrepo persists order aggregates together with their bundles
// and address change history.
package orderrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/lineitems"
	"logistics/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Items are stored as JSONB; bundles and the
// address history live in child tables.
type OrderDTO struct {
	ID                   string          `gorm:"primaryKey"`
	Kind                 string          `gorm:"not null"`
	PartyID              string          `gorm:"not null;index"`
	Items                []lineitems.DTO `gorm:"type:jsonb;serializer:json;not null"`
	IssuedAt             time.Time       `gorm:"not null"`
	Status               string          `gorm:"not null;index"`
	Total                decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DestinationID        string
	DestinationAddress   string
	AddressStatus        string `gorm:"not null"`
	FreightPayer         string `gorm:"not null"`
	PreferredCarrierID   string
	PackingListValidated bool
	InvoiceRef           string
	RouteID              string
	Bundles              []BundleDTO        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	AddressHistory       []AddressChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// BundleDTO is one order_bundles row. Bundles are append-only.
type BundleDTO struct {
	ID      string          `gorm:"primaryKey"`
	OrderID string          `gorm:"not null;index"`
	Number  int             `gorm:"not null"`
	Weight  float64         `gorm:"not null"`
	Items   []lineitems.DTO `gorm:"type:jsonb;serializer:json;not null"`
}

func (BundleDTO) TableName() string {
	return "order_bundles"
}

// AddressChangeDTO is one order_address_changes row, keyed by its position
// in the history.
type AddressChangeDTO struct {
	OrderID    string    `gorm:"primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	ChangedAt  time.Time `gorm:"not null"`
	EmailID    string
	OldAddress string
	NewAddress string `gorm:"not null"`
}

func (AddressChangeDTO) TableName() string {
	return "order_address_changes"
}

func fromDomain(o *order.Order) OrderDTO {
	bundles := make([]BundleDTO, 0, len(o.Bundles()))
	for _, b := range o.Bundles() {
		bundles = append(bundles, BundleDTO{
			ID:      b.ID(),
			OrderID: o.ID(),
			Number:  b.Number(),
			Weight:  b.Weight(),
			Items:   lineitems.FromDomain(b.Items()),
		})
	}

	history := make([]AddressChangeDTO, 0, len(o.AddressHistory()))
	for idx, change := range o.AddressHistory() {
		history = append(history, AddressChangeDTO{
			OrderID:    o.ID(),
			Seq:        idx + 1,
			ChangedAt:  change.At,
			EmailID:    change.EmailID,
			OldAddress: change.OldAddress,
			NewAddress: change.NewAddress,
		})
	}

	return OrderDTO{
		ID:                   o.ID(),
		Kind:                 string(o.Kind()),
		PartyID:              o.PartyID(),
		Items:                lineitems.FromDomain(o.Items()),
		IssuedAt:             o.IssuedAt(),
		Status:               o.Status().String(),
		Total:                o.Total(),
		DestinationID:        o.Destination().ID,
		DestinationAddress:   o.Destination().Address,
		AddressStatus:        string(o.AddressStatus()),
		FreightPayer:         string(o.FreightPayer()),
		PreferredCarrierID:   o.PreferredCarrierID(),
		PackingListValidated: o.IsPackingListValidated(),
		InvoiceRef:           o.InvoiceRef(),
		RouteID:              o.RouteID(),
		Bundles:              bundles,
		AddressHistory:       history,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	items, err := lineitems.ToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	bundles := make([]order.Bundle, 0, len(dto.Bundles))
	for _, b := range dto.Bundles {
		bundleItems, itemsErr := lineitems.ToDomain(b.Items)
		if itemsErr != nil {
			return nil, itemsErr
		}
		bundle, bundleErr := order.RestoreBundle(dto.ID, b.Number, b.Weight, bundleItems)
		if bundleErr != nil {
			return nil, bundleErr
		}
		bundles = append(bundles, bundle)
	}

	history := make([]order.AddressChange, 0, len(dto.AddressHistory))
	for _, h := range dto.AddressHistory {
		history = append(history, order.AddressChange{
			At:         h.ChangedAt,
			EmailID:    h.EmailID,
			OldAddress: h.OldAddress,
			NewAddress: h.NewAddress,
		})
	}

	return order.RestoreOrder(order.State{
		ID:                   dto.ID,
		Kind:                 order.Kind(dto.Kind),
		PartyID:              dto.PartyID,
		Items:                items,
		IssuedAt:             dto.IssuedAt,
		Status:               status,
		Total:                dto.Total,
		Destination:          order.Destination{ID: dto.DestinationID, Address: dto.DestinationAddress},
		AddressStatus:        order.AddressStatus(dto.AddressStatus),
		FreightPayer:         order.FreightPayer(dto.FreightPayer),
		PreferredCarrierID:   dto.PreferredCarrierID,
		PackingListValidated: dto.PackingListValidated,
		Bundles:              bundles,
		InvoiceRef:           dto.InvoiceRef,
		RouteID:              dto.RouteID,
		AddressHistory:       history,
	})
}
