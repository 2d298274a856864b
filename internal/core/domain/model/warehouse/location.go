// Package warehouse holds the storage locations of the halls.
package warehouse

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a rack position inside a hall, e.g. S1-U03.
type Location struct {
	id         string
	hall       string
	rack       string
	level      string
	capacityKg float64
	items      kernel.Items

	isConstructed bool
}

func NewLocation(id, hall, rack, level string, capacityKg float64, items kernel.Items) (*Location, error) {
	id = strings.TrimSpace(id)

	var err error
	if id == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("location id"))
	}
	if capacityKg < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"capacity is invalid", fmt.Errorf("%v is negative", capacityKg)))
	}
	if err != nil {
		return nil, err
	}

	return &Location{
		id:            id,
		hall:          hall,
		rack:          rack,
		level:         level,
		capacityKg:    capacityKg,
		items:         items.Clone(),
		isConstructed: true,
	}, nil
}

func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

func (l *Location) ID() string { return l.id }
func (l *Location) Hall() string { return l.hall }
func (l *Location) Rack() string { return l.rack }
func (l *Location) Level() string { return l.level }
func (l *Location) CapacityKg() float64 { return l.capacityKg }
func (l *Location) Items() kernel.Items { return l.items.Clone() }

// IsEmpty reports whether nothing is stored at the location.
func (l *Location) IsEmpty() bool {
	return l.items.TotalQuantity() == 0
}

// Store merges items into the location, adding quantities of known products.
// Capacity is informational and not enforced.
func (l *Location) Store(items kernel.Items) {
	l.items = l.items.Merge(items)
}
