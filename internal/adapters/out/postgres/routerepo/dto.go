package routerepo

import "logistics/internal/core/domain/model/route"

type RouteDTO struct {
	ID      string    `gorm:"primaryKey"`
	TruckID string    `gorm:"not null"`
	Status  string    `gorm:"not null"`
	Stops   []StopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

type StopDTO struct {
	RouteID          string `gorm:"primaryKey"`
	Sequence         int    `gorm:"primaryKey"`
	OrderID          string `gorm:"not null"`
	CarrierID        string
	Address          string
	Type             string `gorm:"not null"`
	EstimatedArrival string
	WaitMinutes      int
}

func (StopDTO) TableName() string {
	return "route_stops"
}

// CarrierDTO is a carriers row; terminals are kept as a JSONB array.
type CarrierDTO struct {
	ID          string        `gorm:"primaryKey"`
	Name        string        `gorm:"not null"`
	Type        string        `gorm:"not null"`
	WaitTimeAvg int           `gorm:"not null"`
	Status      string        `gorm:"not null"`
	Terminals   []TerminalDTO `gorm:"type:jsonb;serializer:json;not null"`
}

func (CarrierDTO) TableName() string {
	return "carriers"
}

type TerminalDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Zone    string `json:"zone"`
}

func fromDomain(r *route.Route) RouteDTO {
	stops := make([]StopDTO, 0, len(r.Stops()))
	for _, s := range r.Stops() {
		stops = append(stops, StopDTO{
			RouteID:          r.ID(),
			Sequence:         s.Sequence,
			OrderID:          s.OrderID,
			CarrierID:        s.CarrierID,
			Address:          s.Address,
			Type:             string(s.Type),
			EstimatedArrival: s.EstimatedArrival,
			WaitMinutes:      s.WaitMinutes,
		})
	}
	return RouteDTO{
		ID:      r.ID(),
		TruckID: r.TruckID(),
		Status:  string(r.Status()),
		Stops:   stops,
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	stops := make([]route.Stop, 0, len(dto.Stops))
	for _, s := range dto.Stops {
		stops = append(stops, route.Stop{
			OrderID:          s.OrderID,
			CarrierID:        s.CarrierID,
			Address:          s.Address,
			Type:             route.StopType(s.Type),
			Sequence:         s.Sequence,
			EstimatedArrival: s.EstimatedArrival,
			WaitMinutes:      s.WaitMinutes,
		})
	}
	return route.RestoreRoute(dto.ID, dto.TruckID, route.Status(dto.Status), stops)
}

// CarrierFromDomain maps a carrier to its row.
func CarrierFromDomain(c *route.Carrier) CarrierDTO {
	terminals := make([]TerminalDTO, 0, len(c.Terminals()))
	for _, t := range c.Terminals() {
		terminals = append(terminals, TerminalDTO(t))
	}
	return CarrierDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Type:        string(c.Type()),
		WaitTimeAvg: c.WaitTimeAvg(),
		Status:      string(c.Status()),
		Terminals:   terminals,
	}
}

func carrierToDomain(dto CarrierDTO) (*route.Carrier, error) {
	terminals := make([]route.Terminal, 0, len(dto.Terminals))
	for _, t := range dto.Terminals {
		terminals = append(terminals, route.Terminal(t))
	}
	return route.NewCarrier(dto.ID, dto.Name, route.CarrierType(dto.Type), dto.WaitTimeAvg, terminals, route.CarrierStatus(dto.Status))
}
