package order_test

import (
	"errors"
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate known statuses", func(t *testing.T) {
		for s := order.Pending; s <= order.Cancelled; s++ {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(9), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(s)), func(t *testing.T) {
				err := s.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(s)))
			})
		}
	})
}

func TestStatus_StringAndParse(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.Released, "released"},
		{order.Picking, "picking"},
		{order.Packed, "packed"},
		{order.Invoiced, "invoiced"},
		{order.Shipped, "shipped"},
		{order.Completed, "completed"},
		{order.Cancelled, "cancelled"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())

			parsed, err := order.ParseStatus(" " + tc.expected + " ")
			require.NoError(t, err)
			assert.Equal(t, tc.status, parsed)
		})
	}

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("unknown")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	release := func(s order.Status) (order.Status, error) { return s.Release() }
	pick := func(s order.Status) (order.Status, error) { return s.StartPicking() }
	pack := func(s order.Status) (order.Status, error) { return s.Pack() }
	invoice := func(s order.Status) (order.Status, error) { return s.Invoice() }
	ship := func(s order.Status) (order.Status, error) { return s.Ship() }
	complete := func(s order.Status) (order.Status, error) { return s.Complete() }
	cancel := func(s order.Status) (order.Status, error) { return s.Cancel() }

	testCases := []struct {
		name    string
		from    order.Status
		apply   transition
		want    order.Status
		wantErr bool
	}{
		{"release pending", order.Pending, release, order.Released, false},
		{"release picking", order.Picking, release, 0, true},
		{"pick released", order.Released, pick, order.Picking, false},
		{"pick pending", order.Pending, pick, 0, true},
		{"pack pending", order.Pending, pack, order.Packed, false},
		{"pack packed", order.Packed, pack, order.Packed, false},
		{"pack invoiced", order.Invoiced, pack, 0, true},
		{"invoice packed", order.Packed, invoice, order.Invoiced, false},
		{"invoice picking", order.Picking, invoice, 0, true},
		{"ship invoiced", order.Invoiced, ship, order.Shipped, false},
		{"ship packed", order.Packed, ship, 0, true},
		{"complete shipped", order.Shipped, complete, order.Completed, false},
		{"complete invoiced", order.Invoiced, complete, 0, true},
		{"cancel released", order.Released, cancel, order.Cancelled, false},
		{"cancel shipped", order.Shipped, cancel, 0, true},
		{"cancel cancelled", order.Cancelled, cancel, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.apply(tc.from)

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, order.ErrStatusTransitionIsInvalid))
				assert.ErrorIs(t, err, errs.ErrConflict)
				assert.Equal(t, order.Status(0), got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())

	assert.True(t, order.Pending.IsPrePacking())
	assert.True(t, order.Packed.IsPrePacking())
	assert.False(t, order.Invoiced.IsPrePacking())
}
