package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/opencourses/courses-api/internal/core/domain"
)

// messageResponse is the 401 body; the exact wording is policy, not contract.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse lists every violated rule, one message per rule, in
// field declaration order.
type validationResponse struct {
	Errors []string `json:"errors"`
}

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// errorResponse wraps the error under a single field, matching the error
// pipeline's contract for everything that is not a 400 or a 401.
type errorResponse struct {
	Err errorBody `json:"err"`
}

// NewHTTPErrorHandler returns the single translation point for every error
// surfaced by middleware and handlers:
//   - ValidationError      → 400 {"errors": [...]}
//   - ErrAccessDenied      → 401 {"message": "Access Denied"} + challenge header
//   - ownership signals    → 403 / 404 with their fixed messages
//   - unmatched routes     → 404 "This page can not be found"
//   - everything else      → 500, real cause logged, never leaked
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{Errors: ve.Messages()})
			return
		}

		if errors.Is(err, domain.ErrAccessDenied) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="courses"`)
			_ = c.JSON(http.StatusUnauthorized, messageResponse{Message: "Access Denied"})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Err: errorBody{Message: msg, Status: code}})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: bind failures, and the router's 404 fallback.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return http.StatusNotFound, "This page can not be found"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound, "can not find this course please try again"
	case errors.Is(err, domain.ErrNotCourseOwner):
		return http.StatusForbidden, "only the course owner can make changes"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
