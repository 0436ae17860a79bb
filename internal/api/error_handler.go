package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// Error detail is only populated for unexpected failures.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, detail := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg, Error: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("%v", he.Message)
		if he.Code == http.StatusNotFound && msg == http.StatusText(http.StatusNotFound) {
			// Unknown route, not a missing resource.
			msg = "Route not found"
		}
		return he.Code, msg, ""
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid id", ""
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "Post not found", ""
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, "Comment not found", ""
	case errors.Is(err, domain.ErrParentCommentNotFound):
		return http.StatusNotFound, "Parent comment not found", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", ""
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Unauthorized access", ""
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", ""
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, "Invalid refresh token", ""
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "User account is inactive", ""
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists", ""
	}

	// Unexpected error: log the real cause, return a generic message with
	// the detail field populated.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error", err.Error()
}
