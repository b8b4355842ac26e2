package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/opencourses/courses-api/internal/api/middleware"
	"github.com/opencourses/courses-api/internal/core/domain"
)

// ctxPrincipal extracts the authenticated user injected by the BasicAuth
// middleware. A missing principal means the route was wired without the
// middleware; fail closed with the same 401 the middleware would emit.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(*domain.User)
	if principal == nil {
		return nil, domain.ErrAccessDenied
	}
	return principal, nil
}
