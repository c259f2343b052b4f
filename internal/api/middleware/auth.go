package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/globalpulse24/newsroom/internal/core/domain"
	"github.com/globalpulse24/newsroom/internal/core/ports"
)

// Context keys set by Auth.
const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Auth validates the bearer token and injects the caller identity into context.
// Every failure is reported as domain.ErrUnauthorized (or an error wrapping it).
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrUnauthorized
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
				return domain.ErrUnauthorized
			}

			identity, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				return err
			}

			c.Set(ContextKeyUsername, identity.Username)
			c.Set(ContextKeyRole, identity.Role)

			return next(c)
		}
	}
}
