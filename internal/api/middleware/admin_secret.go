package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

// HeaderAdminToken carries the shared admin secret.
const HeaderAdminToken = "X-Admin-Token"

// AdminSecret guards routes with a static shared secret sent in X-Admin-Token.
// The comparison is exact and constant-time; an empty configured secret
// rejects every request.
func AdminSecret(secret string) echo.MiddlewareFunc {
	want := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := []byte(c.Request().Header.Get(HeaderAdminToken))
			if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
