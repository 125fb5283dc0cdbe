package queries

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
)

// AuthenticateClientQueryHandler checks client credentials against the
// stored bcrypt hash. An unknown username and a wrong password produce the
// same AuthenticationError, so the response never reveals which one it was.
type AuthenticateClientQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateClientQueryHandler creates a handler for client credential checks.
// Requires a GORM database connection for query execution.
func NewAuthenticateClientQueryHandler(db *gorm.DB) AuthenticateClientQueryHandler {
	return AuthenticateClientQueryHandler{db: db}
}

// Handle executes the credential check and returns the client's identity.
func (h AuthenticateClientQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateClientQuery,
) (AuthenticateClientQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateClientQueryResponse{}, err
	}

	var row struct {
		ID           int64
		Fullname     string
		Address      string
		Phone        string
		Username     string
		PasswordHash string
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fullname,
			address,
			phone,
			username,
			password_hash
		FROM clients
		WHERE username = ?
	`, query.Username()).Scan(&row).Error
	if err != nil {
		return AuthenticateClientQueryResponse{}, err
	}

	if row.ID == 0 {
		return AuthenticateClientQueryResponse{}, errs.NewAuthenticationError()
	}

	err = bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(query.Password()))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return AuthenticateClientQueryResponse{}, errs.NewAuthenticationError()
		}
		return AuthenticateClientQueryResponse{}, errs.NewAuthenticationErrorWithCause(err)
	}

	clientID, err := kernel.NewID(row.ID)
	if err != nil {
		return AuthenticateClientQueryResponse{}, err
	}

	return AuthenticateClientQueryResponse{
		ClientID: clientID,
		Fullname: row.Fullname,
		Address:  row.Address,
		Phone:    row.Phone,
		Username: row.Username,
	}, nil
}
