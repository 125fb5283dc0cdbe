package kernel_test

import (
	"strings"
	"testing"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("trims_whitespace", func(t *testing.T) {
		addr, err := kernel.NewAddress("  12 Rizal Ave, Angeles City  ")

		require.NoError(t, err)
		assert.Equal(t, "12 Rizal Ave, Angeles City", addr.String())
		require.NoError(t, addr.Validate())
	})

	t.Run("rejects_blank", func(t *testing.T) {
		_, err := kernel.NewAddress("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_overlong", func(t *testing.T) {
		_, err := kernel.NewAddress(strings.Repeat("x", 501))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var addr kernel.Address
		require.Error(t, addr.Validate())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("A")
	b, _ := kernel.NewAddress(" A ")
	c, _ := kernel.NewAddress("B")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
