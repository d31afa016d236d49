package order_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Pending))
	assert.Equal(t, 2, int(order.Assigned))
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{order.Pending, order.Assigned} {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(3)} {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "ASSIGNED", order.Assigned.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	status, err := order.ParseStatus("PENDING")
	require.NoError(t, err)
	assert.Equal(t, order.Pending, status)

	status, err = order.ParseStatus("ASSIGNED")
	require.NoError(t, err)
	assert.Equal(t, order.Assigned, status)

	_, err = order.ParseStatus("pending")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Assign(t *testing.T) {
	t.Run("pending can be assigned", func(t *testing.T) {
		next, err := order.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("assigned is terminal", func(t *testing.T) {
		next, err := order.Assigned.Assign()

		require.Error(t, err)
		assert.Equal(t, order.Unknown, next)
		assert.Contains(t, err.Error(), "ASSIGNED is not a valid status to assign")
	})
}

func TestStatus_ValidateCanHaveCenter(t *testing.T) {
	require.NoError(t, order.Pending.ValidateCanHaveCenter(false))
	require.NoError(t, order.Assigned.ValidateCanHaveCenter(true))
	require.Error(t, order.Pending.ValidateCanHaveCenter(true))
	require.Error(t, order.Assigned.ValidateCanHaveCenter(false))
}
