package order

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Bundle is a physical packing unit of an order. Bundles are loaded last in,
// first out, so Number doubles as the loading sequence.
type Bundle struct {
	id      string
	orderID string
	number  int
	weight  float64
	items   kernel.Items
}

func bundleID(orderID string, number int) string {
	return fmt.Sprintf("B-%s-%d", orderID, number)
}

// RestoreBundle rebuilds a bundle read from storage.
func RestoreBundle(orderID string, number int, weight float64, items kernel.Items) (Bundle, error) {
	if number < 1 {
		return Bundle{}, errs.NewValueIsOutOfRangeError("bundle number", number, 1, "unbounded")
	}
	if weight < 0 {
		return Bundle{}, errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%v is negative", weight))
	}
	return Bundle{
		id:      bundleID(orderID, number),
		orderID: orderID,
		number:  number,
		weight:  weight,
		items:   items.Clone(),
	}, nil
}

func (b Bundle) ID() string { return b.id }
func (b Bundle) OrderID() string { return b.orderID }
func (b Bundle) Number() int { return b.number }
func (b Bundle) Weight() float64 { return b.weight }
func (b Bundle) Items() kernel.Items { return b.items.Clone() }
