package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/posts/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, "Invalid id"},
		{"post not found", domain.ErrPostNotFound, http.StatusNotFound, "Post not found"},
		{"comment not found", domain.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
		{"parent comment not found", domain.ErrParentCommentNotFound, http.StatusNotFound, "Parent comment not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Unauthorized access"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"invalid refresh token", domain.ErrInvalidRefreshToken, http.StatusUnauthorized, "Invalid refresh token"},
		{"inactive user", domain.ErrUserInactive, http.StatusForbidden, "User account is inactive"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "User already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := handleError(t, tt.err)
			if code != tt.code {
				t.Errorf("expected status %d, got %d", tt.code, code)
			}
			if body["message"] != tt.message {
				t.Errorf("expected message %q, got %v", tt.message, body["message"])
			}
			if _, ok := body["error"]; ok {
				t.Error("detail must be omitted for expected errors")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrPostNotFound)
	code, body := handleError(t, wrapped)
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for wrapped sentinel, got %d", code)
	}
	if body["message"] != "Post not found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "postId is required"))
	if code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if body["message"] != "postId is required" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestHTTPErrorHandler_UnknownRoute(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, http.StatusText(http.StatusNotFound)))
	if code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
	if body["message"] != "Route not found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, body := handleError(t, errors.New("connection reset"))
	if code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", code)
	}
	if body["message"] != "Server error" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["error"] != "connection reset" {
		t.Errorf("expected detail for unexpected errors, got %v", body["error"])
	}
}
