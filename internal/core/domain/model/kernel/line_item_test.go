package kernel_test

import (
	"regexp"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productID string, qty int) kernel.LineItem {
	t.Helper()
	item, err := kernel.NewLineItem(productID, qty)
	require.NoError(t, err)
	return item
}

func TestNewLineItem(t *testing.T) {
	t.Run("should trim product id", func(t *testing.T) {
		item, err := kernel.NewLineItem("  70LVL2GMC7200 ", 500)

		require.NoError(t, err)
		assert.Equal(t, "70LVL2GMC7200", item.ProductID())
		assert.Equal(t, 500, item.Quantity())
	})

	t.Run("should accept zero quantity", func(t *testing.T) {
		item, err := kernel.NewLineItem("50SPA1GMC100", 0)

		require.NoError(t, err)
		assert.Equal(t, 0, item.Quantity())
	})

	t.Run("should reject empty product", func(t *testing.T) {
		_, err := kernel.NewLineItem(" ", 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := kernel.NewLineItem("50SPA1GMC100", -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestItems(t *testing.T) {
	items := kernel.Items{
		mustItem(t, "A", 10),
		mustItem(t, "B", 5),
		mustItem(t, "A", 1),
	}

	t.Run("should total quantities", func(t *testing.T) {
		assert.Equal(t, 16, items.TotalQuantity())
		assert.Equal(t, 11, items.QuantityOf("A"))
		assert.Equal(t, 0, items.QuantityOf("Z"))
	})

	t.Run("should merge by product keeping order", func(t *testing.T) {
		base := kernel.Items{mustItem(t, "A", 10), mustItem(t, "B", 5)}

		merged := base.Merge(kernel.Items{mustItem(t, "B", 2), mustItem(t, "C", 7)})

		require.Len(t, merged, 3)
		assert.Equal(t, "A", merged[0].ProductID())
		assert.Equal(t, 7, merged[1].Quantity())
		assert.Equal(t, "C", merged[2].ProductID())
		assert.Equal(t, 5, base[1].Quantity(), "merge must not mutate the receiver")
	})

	t.Run("should clone nil as empty", func(t *testing.T) {
		var none kernel.Items
		assert.NotNil(t, none.Clone())
		assert.Empty(t, none.Clone())
	})
}

func TestNewReference(t *testing.T) {
	ref := kernel.NewReference("IMP")

	assert.Regexp(t, regexp.MustCompile(`^IMP-[0-9A-F]{6}$`), ref)
	assert.NotEqual(t, ref, kernel.NewReference("IMP"))
}
