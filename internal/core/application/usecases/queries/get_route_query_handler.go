package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	db := h.db.WithContext(ctx)
	view := RouteView{ID: query.RouteID()}

	err := db.Raw(`SELECT truck_id, status FROM routes WHERE id = ?`, query.RouteID()).
		Row().Scan(&view.TruckID, &view.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RouteView{}, errs.NewObjectNotFoundError("route", query.RouteID())
		}
		return RouteView{}, err
	}

	rows, err := db.Raw(`
		SELECT sequence, order_id, carrier_id, address, type, estimated_arrival, wait_minutes
		FROM route_stops
		WHERE route_id = ?
		ORDER BY sequence`, query.RouteID()).Rows()
	if err != nil {
		return RouteView{}, err
	}
	defer rows.Close()

	view.Stops = make([]StopView, 0)
	for rows.Next() {
		var s StopView
		if err := rows.Scan(&s.Sequence, &s.OrderID, &s.CarrierID, &s.Address, &s.Type, &s.EstimatedArrival, &s.WaitMinutes); err != nil {
			return RouteView{}, err
		}
		view.Stops = append(view.Stops, s)
	}
	if err := rows.Err(); err != nil {
		return RouteView{}, err
	}

	view.LoadingOrder = make([]string, 0, len(view.Stops))
	for idx := len(view.Stops) - 1; idx >= 0; idx-- {
		view.LoadingOrder = append(view.LoadingOrder, view.Stops[idx].OrderID)
	}
	return view, nil
}
