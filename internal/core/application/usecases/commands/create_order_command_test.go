package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	coords := validCoordinates(t)

	cmd, err := commands.NewCreateOrderCommand(1001, "M", coords)

	require.NoError(t, err)
	assert.Equal(t, int64(1001), cmd.CustomerID())
	assert.Equal(t, kernel.Medium, cmd.Size())
	assert.True(t, coords.IsEqual(cmd.Coordinates()))
}

func TestNewCreateOrderCommand_MissingCustomer(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, "M", validCoordinates(t))

	require.ErrorIs(t, err, order.ErrCustomerIDIsRequired)
}

func TestNewCreateOrderCommand_InvalidSize(t *testing.T) {
	for _, size := range []string{"", "XL", "s", "BM"} {
		t.Run(size, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(1, size, validCoordinates(t))
			require.ErrorIs(t, err, kernel.ErrSizeIsInvalid)
		})
	}
}

func TestNewCreateOrderCommand_MissingCoordinates(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(1, "S", kernel.Coordinates{})

	require.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, "", kernel.Coordinates{})

	require.ErrorIs(t, err, order.ErrCustomerIDIsRequired)
	require.ErrorIs(t, err, kernel.ErrSizeIsInvalid)
	require.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
}
