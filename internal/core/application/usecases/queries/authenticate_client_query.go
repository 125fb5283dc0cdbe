package queries

import (
	"errors"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

var (
	ErrAuthenticateClientQueryIsNotConstructed = errors.New(
		"AuthenticateClientQuery must be created via NewAuthenticateClientQuery constructor",
	)
)

// AuthenticateClientQuery verifies a client's username/password pair.
// The plaintext password lives only for the duration of the check.
//
// Example:
//
//	query, err := NewAuthenticateClientQuery("maria", "s3cret-pw")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAuthenticateClientQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrAuthenticationFailed) {
//	    // wrong username or password; the error does not say which
//	}
type AuthenticateClientQuery struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateClientQuery creates a credential check query.
// Both fields are required.
func NewAuthenticateClientQuery(username, password string) (AuthenticateClientQuery, error) {
	if username == "" {
		return AuthenticateClientQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateClientQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateClientQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateClientQueryIsNotConstructed if validation fails.
func (q AuthenticateClientQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateClientQueryIsNotConstructed)
}

// Username returns the login name being checked.
func (q AuthenticateClientQuery) Username() string {
	return q.username
}

// Password returns the plaintext password being checked.
func (q AuthenticateClientQuery) Password() string {
	return q.password
}

// AuthenticateClientQueryResponse identifies the authenticated client and
// carries their profile for the login response. The password hash never
// leaves the handler.
type AuthenticateClientQueryResponse struct {
	ClientID kernel.ID
	Fullname string
	Address  string
	Phone    string
	Username string
}
