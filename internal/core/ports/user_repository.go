package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users for the given ids keyed by id. Missing ids
	// are simply absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	SetRefreshToken(ctx context.Context, id, token string) error
	// Deactivate flips the active flag to false. Accounts are never deleted.
	Deactivate(ctx context.Context, id string) error
}
