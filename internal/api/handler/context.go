package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/globalpulse24/newsroom/internal/api/middleware"
	"github.com/globalpulse24/newsroom/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A missing
// username means the middleware did not run; treat it as unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	username, _ := c.Get(middleware.ContextKeyUsername).(string)
	role, _ := c.Get(middleware.ContextKeyRole).(string)
	if username == "" || role == "" {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return domain.Identity{Username: username, Role: role}, nil
}
