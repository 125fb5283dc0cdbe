package guard_test

import (
	"errors"
	"testing"

	"kabalen/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, g.Validate(nil))
		require.NoError(t, cp.Validate(nil))
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	type balance struct {
		amount float64
		guard  guard.ConstructorGuard
	}

	errNotConstructed := errors.New("balance must be created via newBalance")
	newBalance := func(amount float64) balance {
		return balance{amount: amount, guard: guard.NewConstructorGuard()}
	}

	constructed := newBalance(15)
	require.NoError(t, constructed.guard.Validate(errNotConstructed))

	var zero balance
	err := zero.guard.Validate(errNotConstructed)
	require.Error(t, err)
	assert.Equal(t, errNotConstructed, err)
}
