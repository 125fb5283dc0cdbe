// Package token issues and verifies the bearer tokens used by the HTTP
// layer. Tokens are HS256-signed JWTs carrying the principal kind and, for
// riders and clients, the entity id as the subject.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
)

// DefaultTTL is the token lifetime used when no explicit TTL is configured.
const DefaultTTL = 12 * time.Hour

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Signer issues and verifies bearer tokens with a shared HMAC secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner creates a signer. The secret is required; a non-positive ttl
// falls back to DefaultTTL.
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token for the principal.
func (s *Signer) Issue(principal kernel.Principal) (string, error) {
	if err := principal.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	c := claims{
		Role: principal.Kind().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if !principal.IsAdmin() {
		c.Subject = principal.EntityID().String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and reconstructs the principal.
// Any parse, signature, or expiry failure comes back as an authentication
// error; the caller cannot tell which check failed.
func (s *Signer) Verify(tokenString string) (kernel.Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return kernel.Principal{}, errs.NewAuthenticationErrorWithCause(err)
	}

	kind, err := kernel.PrincipalKindFromString(c.Role)
	if err != nil {
		return kernel.Principal{}, errs.NewAuthenticationErrorWithCause(err)
	}

	if kind == kernel.PrincipalAdmin {
		return kernel.NewAdminPrincipal(), nil
	}

	raw, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return kernel.Principal{}, errs.NewAuthenticationErrorWithCause(err)
	}
	id, err := kernel.NewID(raw)
	if err != nil {
		return kernel.Principal{}, errs.NewAuthenticationErrorWithCause(err)
	}

	principal, err := kernel.NewPrincipal(kind, id)
	if err != nil {
		return kernel.Principal{}, errs.NewAuthenticationErrorWithCause(err)
	}
	return principal, nil
}
