package kernel

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// LineItem is an immutable quantity of a single product.
type LineItem struct {
	productID string
	quantity  int
}

// NewLineItem validates that the product is set and the quantity is not negative.
// A zero quantity is allowed: inbound CSV rows with a non numeric quantity
// are kept with quantity 0.
func NewLineItem(productID string, quantity int) (LineItem, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return LineItem{}, errs.NewValueIsRequiredError("product id")
	}
	if quantity < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	return LineItem{productID: productID, quantity: quantity}, nil
}

func (i LineItem) ProductID() string {
	return i.productID
}

func (i LineItem) Quantity() int {
	return i.quantity
}

// Add returns a copy with the quantity increased by qty.
func (i LineItem) Add(qty int) LineItem {
	return LineItem{productID: i.productID, quantity: i.quantity + qty}
}

// Items is an ordered list of line items.
type Items []LineItem

// TotalQuantity sums every line.
func (s Items) TotalQuantity() int {
	total := 0
	for _, i := range s {
		total += i.quantity
	}
	return total
}

// QuantityOf sums the lines of one product.
func (s Items) QuantityOf(productID string) int {
	total := 0
	for _, i := range s {
		if i.productID == productID {
			total += i.quantity
		}
	}
	return total
}

// Merge returns a new list where lines of other are added to the lines of the
// same product, or appended in order when the product is new.
func (s Items) Merge(other Items) Items {
	merged := make(Items, len(s), len(s)+len(other))
	copy(merged, s)
	for _, item := range other {
		found := false
		for idx := range merged {
			if merged[idx].productID == item.productID {
				merged[idx] = merged[idx].Add(item.quantity)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, item)
		}
	}
	return merged
}

// Clone returns a copy safe to hand out of an aggregate.
func (s Items) Clone() Items {
	if s == nil {
		return Items{}
	}
	out := make(Items, len(s))
	copy(out, s)
	return out
}
