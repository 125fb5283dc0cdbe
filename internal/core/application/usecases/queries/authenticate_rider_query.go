package queries

import (
	"errors"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

var (
	ErrAuthenticateRiderQueryIsNotConstructed = errors.New(
		"AuthenticateRiderQuery must be created via NewAuthenticateRiderQuery constructor",
	)
)

// AuthenticateRiderQuery verifies a rider's username/password pair.
type AuthenticateRiderQuery struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateRiderQuery creates a credential check query.
// Both fields are required.
func NewAuthenticateRiderQuery(username, password string) (AuthenticateRiderQuery, error) {
	if username == "" {
		return AuthenticateRiderQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateRiderQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateRiderQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateRiderQueryIsNotConstructed if validation fails.
func (q AuthenticateRiderQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateRiderQueryIsNotConstructed)
}

// Username returns the login name being checked.
func (q AuthenticateRiderQuery) Username() string {
	return q.username
}

// Password returns the plaintext password being checked.
func (q AuthenticateRiderQuery) Password() string {
	return q.password
}

// AuthenticateRiderQueryResponse identifies the authenticated rider and
// carries their profile for the login response. The password hash never
// leaves the handler.
type AuthenticateRiderQueryResponse struct {
	RiderID  kernel.ID
	Name     string
	Phone    string
	Username string
	Credit   float64
}
