package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "SO-1001")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "SO-1001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: SO-1001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("lot", "PED-9", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: lot, ID is: PED-9 (cause: database connection failed)",
			err.Error())
	})

	t.Run("numeric ids are printed plainly", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("bundle", 3)
		assert.Equal(t, "object not found: 3", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("freight payer")

		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: freight payer", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown value")
		err := errs.NewValueIsInvalidErrorWithCause("freight payer", cause)

		assert.Equal(t, "value is invalid: freight payer (cause: unknown value)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000000)

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("not enough stock")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", 600, 1, 500, cause)

		assert.Equal(t,
			"value is invalid: 600 is quantity, min value is 1, max value is 500 (cause: not enough stock)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("destination")
	assert.Equal(t, "value is required: destination", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("destination", errors.New("customer cust1 was selected"))
	assert.Equal(t, "value is required: destination (cause: customer cust1 was selected)", withCause.Error())
}

func TestConflictError(t *testing.T) {
	reason := errors.New("packing list is not validated")
	err := errs.NewConflictError(reason)

	assert.Equal(t, "operation conflicts with current state: packing list is not validated", err.Error())
	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, reason)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", "SO-1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, errors.Join(errors.New("other"), errs.NewObjectNotFoundError("lot", "L1")), &notFound)
	assert.Equal(t, "L1", notFound.ID)
}
