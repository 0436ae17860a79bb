package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. The role is
// always "user"; admins are provisioned out of band.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

// AuthService defines account and token use-cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout revokes the user's current refresh token.
	Logout(ctx context.Context, userID string) error
	Deactivate(ctx context.Context, userID string) error
}
