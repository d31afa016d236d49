package commands_test

import (
	"math"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewUpdateCenterCommand(t *testing.T) {
	t.Run("should accept an empty patch", func(t *testing.T) {
		cmd, err := commands.NewUpdateCenterCommand(kernel.MustNewID(1), commands.CenterChanges{})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(1), cmd.CenterID().Int64())
	})

	t.Run("should require center id", func(t *testing.T) {
		_, err := commands.NewUpdateCenterCommand(kernel.ID{}, commands.CenterChanges{})

		require.ErrorIs(t, err, kernel.ErrIDIsNotAssigned)
	})

	t.Run("should reject invalid capacity", func(t *testing.T) {
		_, err := commands.NewUpdateCenterCommand(kernel.MustNewID(1), commands.CenterChanges{Capacity: ptr("XL")})

		require.ErrorIs(t, err, kernel.ErrCapacityIsInvalid)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := commands.NewUpdateCenterCommand(kernel.MustNewID(1), commands.CenterChanges{Status: ptr("STALE")})

		require.ErrorIs(t, err, center.ErrStatusIsInvalid)
	})

	t.Run("should reject out of range latitude", func(t *testing.T) {
		_, err := commands.NewUpdateCenterCommand(kernel.MustNewID(1), commands.CenterChanges{Latitude: ptr(91.0)})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject NaN longitude", func(t *testing.T) {
		_, err := commands.NewUpdateCenterCommand(kernel.MustNewID(1), commands.CenterChanges{Longitude: ptr(math.NaN())})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateCenterCommand_PatchFor(t *testing.T) {
	coords, _ := kernel.NewCoordinates(10, 20)
	capacity, _ := kernel.ParseCapacity("S")
	current, err := center.RestoreCenter(kernel.MustNewID(1), "Hub", capacity, center.Available, 0, 1, coords)
	require.NoError(t, err)

	t.Run("should keep position when untouched", func(t *testing.T) {
		cmd, _ := commands.NewUpdateCenterCommand(kernel.MustNewID(1), commands.CenterChanges{Name: ptr("New")})

		patch, err := cmd.PatchFor(current)

		require.NoError(t, err)
		assert.Nil(t, patch.Coordinates)
		assert.Equal(t, "New", *patch.Name)
	})

	t.Run("should complete a latitude-only change", func(t *testing.T) {
		cmd, _ := commands.NewUpdateCenterCommand(kernel.MustNewID(1), commands.CenterChanges{Latitude: ptr(11.0)})

		patch, err := cmd.PatchFor(current)

		require.NoError(t, err)
		require.NotNil(t, patch.Coordinates)
		assert.InDelta(t, 11.0, patch.Coordinates.Latitude(), 1e-12)
		assert.InDelta(t, 20.0, patch.Coordinates.Longitude(), 1e-12)
		assert.True(t, patch.MovesCenter(current))
	})

	t.Run("should not move for same position", func(t *testing.T) {
		cmd, _ := commands.NewUpdateCenterCommand(kernel.MustNewID(1), commands.CenterChanges{
			Latitude:  ptr(10.0),
			Longitude: ptr(20.0),
		})

		patch, err := cmd.PatchFor(current)

		require.NoError(t, err)
		assert.False(t, patch.MovesCenter(current))
	})
}
