package customerrepo

import "logistics/internal/core/domain/model/customer"

// CustomerDTO is the customers row. The compliance specs are flattened into
// columns and the destinations live in customer_destinations.
type CustomerDTO struct {
	ID                      string `gorm:"primaryKey"`
	Name                    string `gorm:"not null"`
	Email                   string
	MainAddress             string
	RequiresPortalUpload    bool
	PortalURL               string
	RequiresPurchaseOrder   bool
	RequiresInsurancePolicy bool
	AcceptedDocType         string           `gorm:"not null"`
	Destinations            []DestinationDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// DestinationDTO keeps the position so destinations load in the order they
// were entered.
type DestinationDTO struct {
	CustomerID string `gorm:"primaryKey"`
	ID         string `gorm:"primaryKey"`
	Position   int    `gorm:"not null"`
	Name       string
	Address    string
	Zone       string
	Type       string
}

func (DestinationDTO) TableName() string {
	return "customer_destinations"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	specs := c.Specs()

	destinations := make([]DestinationDTO, 0, len(c.Destinations()))
	for idx, d := range c.Destinations() {
		destinations = append(destinations, DestinationDTO{
			CustomerID: c.ID(),
			ID:         d.ID,
			Position:   idx,
			Name:       d.Name,
			Address:    d.Address,
			Zone:       d.Zone,
			Type:       string(d.Type),
		})
	}

	return CustomerDTO{
		ID:                      c.ID(),
		Name:                    c.Name(),
		Email:                   c.Email(),
		MainAddress:             c.MainAddress(),
		RequiresPortalUpload:    specs.RequiresPortalUpload,
		PortalURL:               specs.PortalURL,
		RequiresPurchaseOrder:   specs.RequiresPurchaseOrderOnInvoice,
		RequiresInsurancePolicy: specs.RequiresInsurancePolicy,
		AcceptedDocType:         string(specs.AcceptedDocType),
		Destinations:            destinations,
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	destinations := make([]customer.Destination, 0, len(dto.Destinations))
	for _, d := range dto.Destinations {
		destinations = append(destinations, customer.Destination{
			ID:      d.ID,
			Name:    d.Name,
			Address: d.Address,
			Zone:    d.Zone,
			Type:    customer.DestinationType(d.Type),
		})
	}

	return customer.NewCustomer(dto.ID, dto.Name, dto.Email, dto.MainAddress, destinations, customer.Specs{
		RequiresPortalUpload:           dto.RequiresPortalUpload,
		PortalURL:                      dto.PortalURL,
		RequiresPurchaseOrderOnInvoice: dto.RequiresPurchaseOrder,
		RequiresInsurancePolicy:        dto.RequiresInsurancePolicy,
		AcceptedDocType:                customer.DocType(dto.AcceptedDocType),
	})
}
