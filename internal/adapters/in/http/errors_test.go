package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"kabalen/internal/pkg/errs"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "AuthenticationFailed",
			err:  errs.NewAuthenticationError(),
			want: http.StatusUnauthorized,
		},
		{
			name: "ValueIsRequired",
			err:  errs.NewValueIsRequiredError("pickup"),
			want: http.StatusBadRequest,
		},
		{
			name: "ValueIsInvalid",
			err:  errs.NewValueIsInvalidError("proof kind"),
			want: http.StatusBadRequest,
		},
		{
			name: "ValueIsOutOfRange",
			err:  errs.NewValueIsOutOfRangeError("delta", -1, 0, 100),
			want: http.StatusBadRequest,
		},
		{
			name: "ObjectNotFound",
			err:  errs.NewObjectNotFoundError("order", 42),
			want: http.StatusNotFound,
		},
		{
			name: "Conflict",
			err:  errs.NewConflictError("order"),
			want: http.StatusForbidden,
		},
		{
			name: "WrappedConflict",
			err:  fmt.Errorf("claim order: %w", errs.NewConflictError("order")),
			want: http.StatusForbidden,
		},
		{
			name: "UnknownError",
			err:  errors.New("database exploded"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
