package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
)

// principalContextKey is the echo context key holding the verified principal.
const principalContextKey = "principal"

// TokenVerifier checks a bearer token and returns the principal it carries.
type TokenVerifier interface {
	Verify(token string) (kernel.Principal, error)
}

// bearerAuth extracts and verifies the Authorization bearer token, storing
// the resulting principal on the request context. Requests without a valid
// token stop here with 401.
func bearerAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			const prefix = "Bearer "

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, prefix) {
				return writeError(c, errs.NewAuthenticationError())
			}

			principal, err := verifier.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				return writeError(c, err)
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// requireKind gates a route to the listed principal kinds. Runs after
// bearerAuth; an authenticated principal of the wrong kind gets 403.
func requireKind(kinds ...kernel.PrincipalKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := principalFrom(c)
			if !ok {
				return writeError(c, errs.NewAuthenticationError())
			}

			for _, kind := range kinds {
				if principal.Kind() == kind {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, errorResponse{
				Code:    http.StatusForbidden,
				Message: "forbidden",
			})
		}
	}
}

// principalFrom reads the principal that bearerAuth stored on the context.
func principalFrom(c echo.Context) (kernel.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(kernel.Principal)
	return principal, ok
}
