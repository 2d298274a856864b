package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// snapshotCollections builds each collection as a JSON array inside
// PostgreSQL so the export is taken from a single statement.
const snapshotCollections = `
	SELECT
		COALESCE((SELECT json_agg(p ORDER BY p.id) FROM products p), '[]'),
		COALESCE((SELECT json_agg(s ORDER BY s.id) FROM suppliers s), '[]'),
		COALESCE((SELECT json_agg(c ORDER BY c.id) FROM (
			SELECT cu.*, COALESCE((
				SELECT json_agg(d ORDER BY d.position)
				FROM customer_destinations d WHERE d.customer_id = cu.id
			), '[]') AS destinations
			FROM customers cu
		) c), '[]'),
		COALESCE((SELECT json_agg(o ORDER BY o.issued_at, o.id) FROM (
			SELECT ord.*,
				COALESCE((
					SELECT json_agg(b ORDER BY b.number)
					FROM order_bundles b WHERE b.order_id = ord.id
				), '[]') AS bundles,
				COALESCE((
					SELECT json_agg(h ORDER BY h.seq)
					FROM order_address_changes h WHERE h.order_id = ord.id
				), '[]') AS address_history
			FROM orders ord
		) o), '[]'),
		COALESCE((SELECT json_agg(l ORDER BY l.id) FROM inbound_lots l), '[]'),
		COALESCE((SELECT json_agg(l ORDER BY l.id) FROM locations l), '[]'),
		COALESCE((SELECT json_agg(c ORDER BY c.id) FROM carriers c), '[]'),
		COALESCE((SELECT json_agg(r ORDER BY r.id) FROM (
			SELECT rt.*, COALESCE((
				SELECT json_agg(st ORDER BY st.sequence)
				FROM route_stops st WHERE st.route_id = rt.id
			), '[]') AS stops
			FROM routes rt
		) r), '[]')`

type ExportSnapshotQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewExportSnapshotQueryHandler(db *gorm.DB) ExportSnapshotQueryHandler {
	return ExportSnapshotQueryHandler{db: db, now: time.Now}
}

func (h ExportSnapshotQueryHandler) Handle(ctx context.Context, query ExportSnapshotQuery) (Snapshot, error) {
	if err := query.Validate(); err != nil {
		return Snapshot{}, err
	}

	var collections [8][]byte
	err := h.db.WithContext(ctx).Raw(snapshotCollections).Row().Scan(
		&collections[0], &collections[1], &collections[2], &collections[3],
		&collections[4], &collections[5], &collections[6], &collections[7],
	)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Products:    collections[0],
		Suppliers:   collections[1],
		Customers:   collections[2],
		Orders:      collections[3],
		InboundLots: collections[4],
		Locations:   collections[5],
		Carriers:    collections[6],
		Routes:      collections[7],
		LastUpdated: h.now().UTC(),
	}, nil
}
