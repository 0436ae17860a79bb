package ports

import (
	"context"
	"time"
)

// TokenStore persists refresh tokens with a TTL. A token maps to the id of
// the account it was issued for.
type TokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Lookup resolves a refresh token to a user id. An unknown or expired
	// token yields domain.ErrInvalidRefreshToken.
	Lookup(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}
