package kernel_test

import (
	"testing"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("positive_value", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("zero_and_negative_are_invalid", func(t *testing.T) {
		_, err := kernel.NewID(0)
		require.Error(t, err)

		_, err = kernel.NewID(-1)
		require.Error(t, err)
	})

	t.Run("zero_value_means_unassigned", func(t *testing.T) {
		var id kernel.ID
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestIDFromString(t *testing.T) {
	t.Run("parses_decimal", func(t *testing.T) {
		id, err := kernel.IDFromString("7")

		require.NoError(t, err)
		assert.Equal(t, int64(7), id.Int64())
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, err := kernel.IDFromString("seven")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive", func(t *testing.T) {
		_, err := kernel.IDFromString("0")
		require.Error(t, err)
	})
}

func TestID_IsEqual(t *testing.T) {
	a, _ := kernel.NewID(1)
	b, _ := kernel.NewID(1)
	c, _ := kernel.NewID(2)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
