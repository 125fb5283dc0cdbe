package client_test

import (
	"testing"

	"kabalen/internal/core/domain/model/client"
	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("valid_client", func(t *testing.T) {
		c, err := client.NewClient(
			" Ana Santos ", "12 Rizal Ave", "0917 555 0101",
			"ana", "$2a$10$hash", "validid_1.jpg", "selfie_1.jpg",
		)

		require.NoError(t, err)
		assert.Equal(t, "Ana Santos", c.Fullname())
		assert.Equal(t, "12 Rizal Ave", c.Address())
		assert.Equal(t, "0917 555 0101", c.Phone())
		assert.Equal(t, "ana", c.Username())
		assert.Equal(t, "$2a$10$hash", c.PasswordHash())
		assert.Equal(t, "validid_1.jpg", c.ValidIDRef())
		assert.Equal(t, "selfie_1.jpg", c.SelfieRef())
		require.Error(t, c.ID().Validate(), "identity is assigned on insert")
		require.NoError(t, c.Validate())
	})

	t.Run("every_field_is_required", func(t *testing.T) {
		fields := []string{"Ana", "Addr", "0917", "ana", "$2a$10$hash", "validid.jpg", "selfie.jpg"}
		for i := range fields {
			args := make([]string, len(fields))
			copy(args, fields)
			args[i] = "  "

			_, err := client.NewClient(args[0], args[1], args[2], args[3], args[4], args[5], args[6])
			require.ErrorIs(t, err, errs.ErrValueIsRequired, "blank field %d must be rejected", i)
		}
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var c client.Client
		require.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)
	})
}

func TestClient_AssignID(t *testing.T) {
	c, err := client.NewClient("Ana", "Addr", "0917", "ana", "h", "v.jpg", "s.jpg")
	require.NoError(t, err)

	id, _ := kernel.NewID(9)
	require.NoError(t, c.AssignID(id))
	assert.Equal(t, int64(9), c.ID().Int64())

	other, _ := kernel.NewID(10)
	require.ErrorIs(t, c.AssignID(other), client.ErrIDAlreadyAssigned)
}

func TestRestoreClient(t *testing.T) {
	id, _ := kernel.NewID(9)

	c, err := client.RestoreClient(id, "Ana", "Addr", "0917", "ana", "h", "v.jpg", "s.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID().Int64())
	require.NoError(t, c.Validate())

	_, err = client.RestoreClient(kernel.ID{}, "Ana", "Addr", "0917", "ana", "h", "v.jpg", "s.jpg")
	require.Error(t, err)
}
