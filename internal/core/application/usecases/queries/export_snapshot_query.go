package queries

import (
	"encoding/json"
	"errors"
	"time"

	"logistics/internal/pkg/guard"
)

var ErrExportSnapshotQueryIsNotConstructed = errors.New(
	"ExportSnapshotQuery must be created via NewExportSnapshotQuery constructor",
)

// ExportSnapshotQuery dumps the whole data set as one JSON document, the
// backup the operators download before a factory reset.
type ExportSnapshotQuery struct {
	guard guard.ConstructorGuard
}

func NewExportSnapshotQuery() ExportSnapshotQuery {
	return ExportSnapshotQuery{guard: guard.NewConstructorGuard()}
}

func (q ExportSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrExportSnapshotQueryIsNotConstructed)
}

// Snapshot holds one JSON array per collection. Child rows (destinations,
// bundles, address changes, stops) are nested in their parents.
type Snapshot struct {
	Products    json.RawMessage `json:"products"`
	Suppliers   json.RawMessage `json:"suppliers"`
	Customers   json.RawMessage `json:"customers"`
	Orders      json.RawMessage `json:"orders"`
	InboundLots json.RawMessage `json:"inboundLots"`
	Locations   json.RawMessage `json:"locations"`
	Carriers    json.RawMessage `json:"carriers"`
	Routes      json.RawMessage `json:"routes"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
