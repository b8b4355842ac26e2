package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/opencourses/courses-api/internal/api/metrics"
	"github.com/opencourses/courses-api/internal/core/domain"
	"github.com/opencourses/courses-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which the authenticated user
// is stored for the lifetime of one request.
const PrincipalKey = "principal"

// BasicAuth authenticates the request via the Basic scheme: it decodes the
// credential pair from the Authorization header, resolves the account, and
// verifies the secret. On success the account is attached to the context as
// the principal; every failure short-circuits with the same 401.
func BasicAuth(users ports.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, password, ok := c.Request().BasicAuth()
			if !ok {
				metrics.AuthAttemptsTotal.WithLabelValues("malformed").Inc()
				return domain.ErrAccessDenied
			}

			user, err := users.Authenticate(c.Request().Context(), email, password)
			if err != nil {
				if errors.Is(err, domain.ErrAccessDenied) {
					metrics.AuthAttemptsTotal.WithLabelValues("rejected").Inc()
				}
				// anything else is a store failure, not a credential problem
				return err
			}

			metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()
			c.Set(PrincipalKey, user)

			return next(c)
		}
	}
}
