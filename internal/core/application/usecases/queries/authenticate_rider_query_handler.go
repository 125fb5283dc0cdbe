package queries

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
)

// AuthenticateRiderQueryHandler checks rider credentials against the stored
// bcrypt hash, with the same opaque failure mode as the client check.
type AuthenticateRiderQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateRiderQueryHandler creates a handler for rider credential checks.
// Requires a GORM database connection for query execution.
func NewAuthenticateRiderQueryHandler(db *gorm.DB) AuthenticateRiderQueryHandler {
	return AuthenticateRiderQueryHandler{db: db}
}

// Handle executes the credential check and returns the rider's identity.
func (h AuthenticateRiderQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateRiderQuery,
) (AuthenticateRiderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateRiderQueryResponse{}, err
	}

	var row struct {
		ID           int64
		Name         string
		Phone        string
		Username     string
		Credit       float64
		PasswordHash string
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			username,
			credit,
			password_hash
		FROM riders
		WHERE username = ?
	`, query.Username()).Scan(&row).Error
	if err != nil {
		return AuthenticateRiderQueryResponse{}, err
	}

	if row.ID == 0 {
		return AuthenticateRiderQueryResponse{}, errs.NewAuthenticationError()
	}

	err = bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(query.Password()))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return AuthenticateRiderQueryResponse{}, errs.NewAuthenticationError()
		}
		return AuthenticateRiderQueryResponse{}, errs.NewAuthenticationErrorWithCause(err)
	}

	riderID, err := kernel.NewID(row.ID)
	if err != nil {
		return AuthenticateRiderQueryResponse{}, err
	}

	return AuthenticateRiderQueryResponse{
		RiderID:  riderID,
		Name:     row.Name,
		Phone:    row.Phone,
		Username: row.Username,
		Credit:   row.Credit,
	}, nil
}
