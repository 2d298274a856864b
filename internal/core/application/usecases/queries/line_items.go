// Package queries contains the read side of the warehouse: order lists and
// documents, catalog listings, the data snapshot and the advisory lookups.
// Handlers read straight from the database with SQL and return read models.
package queries

import (
	"encoding/json"
	"fmt"
)

// LineItem is one product quantity of a read model.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// lineItems scans an items JSONB column.
type lineItems []LineItem

func (l *lineItems) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = lineItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into line items", src)
	}
	return json.Unmarshal(raw, (*[]LineItem)(l))
}
