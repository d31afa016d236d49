package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("center not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errCommandNotConstructed := errors.New("command must be created via its constructor")

	type command struct {
		name  string
		guard guard.ConstructorGuard
	}

	newCommand := func(name string) command {
		return command{name: name, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		c := newCommand("assign")
		require.NoError(t, c.guard.Validate(errCommandNotConstructed))
	})

	t.Run("struct_literal_fails", func(t *testing.T) {
		c := command{name: "assign"}
		require.ErrorIs(t, c.guard.Validate(errCommandNotConstructed), errCommandNotConstructed)
	})

	t.Run("copies_keep_the_flag", func(t *testing.T) {
		c := newCommand("assign")
		cp := c
		require.NoError(t, cp.guard.Validate(errCommandNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
