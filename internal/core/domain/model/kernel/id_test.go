package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id, err := kernel.NewID(7)

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	assert.Equal(t, int64(7), id.Int64())
	assert.Equal(t, "7", id.String())
	assert.False(t, id.IsZero())

	for _, v := range []int64{0, -1} {
		_, err = kernel.NewID(v)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestParseID(t *testing.T) {
	id, err := kernel.ParseID("42")
	require.NoError(t, err)
	assert.True(t, id.IsEqual(kernel.MustNewID(42)))

	_, err = kernel.ParseID("abc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.ParseID("0")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	assert.True(t, id.IsZero())
	require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotAssigned)
}

func TestID_Ordering(t *testing.T) {
	first := kernel.MustNewID(1)
	second := kernel.MustNewID(2)

	assert.True(t, first.Less(second))
	assert.False(t, second.Less(first))
	assert.False(t, first.Less(first))
}

func TestMustNewID_Panics(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewID(0) })
}
