package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	for symbol, want := range map[string]kernel.Size{"S": kernel.Small, "M": kernel.Medium, "B": kernel.Big} {
		t.Run(symbol, func(t *testing.T) {
			size, err := kernel.ParseSize(symbol)

			require.NoError(t, err)
			assert.Equal(t, want, size)
			assert.Equal(t, symbol, size.String())
			require.NoError(t, size.Validate())
		})
	}

	for _, symbol := range []string{"", "s", "L", "SM"} {
		t.Run("invalid "+symbol, func(t *testing.T) {
			_, err := kernel.ParseSize(symbol)

			require.ErrorIs(t, err, kernel.ErrSizeIsInvalid)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}

	require.Error(t, kernel.UnknownSize.Validate())
	assert.Equal(t, "Unknown", kernel.UnknownSize.String())
}

func TestParseCapacity(t *testing.T) {
	valid := map[string][]kernel.Size{
		"B":   {kernel.Big},
		"M":   {kernel.Medium},
		"S":   {kernel.Small},
		"BM":  {kernel.Big, kernel.Medium},
		"BS":  {kernel.Big, kernel.Small},
		"MS":  {kernel.Medium, kernel.Small},
		"BMS": {kernel.Big, kernel.Medium, kernel.Small},
	}

	for descriptor, sizes := range valid {
		t.Run(descriptor, func(t *testing.T) {
			c, err := kernel.ParseCapacity(descriptor)

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.Equal(t, descriptor, c.String())
			assert.Equal(t, sizes, c.Sizes())
		})
	}

	for _, descriptor := range []string{"", "X", "SM", "SMB", "BB", "B,M,S", "bms"} {
		t.Run("invalid "+descriptor, func(t *testing.T) {
			_, err := kernel.ParseCapacity(descriptor)

			require.ErrorIs(t, err, kernel.ErrCapacityIsInvalid)
		})
	}
}

func TestCapacity_Contains(t *testing.T) {
	c, err := kernel.NewCapacity(kernel.Big, kernel.Small)
	require.NoError(t, err)

	assert.True(t, c.Contains(kernel.Big))
	assert.True(t, c.Contains(kernel.Small))
	assert.False(t, c.Contains(kernel.Medium))
	assert.False(t, c.Contains(kernel.UnknownSize))
}

func TestNewCapacity_Invalid(t *testing.T) {
	_, err := kernel.NewCapacity()
	require.ErrorIs(t, err, kernel.ErrCapacityIsInvalid)

	_, err = kernel.NewCapacity(kernel.UnknownSize)
	require.ErrorIs(t, err, kernel.ErrCapacityIsInvalid)

	require.ErrorIs(t, kernel.Capacity(0).Validate(), kernel.ErrCapacityIsInvalid)
	require.ErrorIs(t, kernel.Capacity(1).Validate(), kernel.ErrCapacityIsInvalid)
}
