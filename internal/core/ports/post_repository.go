package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// ListPostsFilter carries all query parameters for listing posts. Only
// published posts are ever returned by List.
type ListPostsFilter struct {
	Search string // optional: full-text match on title and content
	Tag    string // optional: exact tag membership
	Page   int    // 1-based
	Limit  int    // max rows per page (capped by the service)
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindByIDAndIncViews atomically increments the view counter and returns
	// the updated document. The increment is applied regardless of
	// publication state; the caller decides visibility afterwards.
	FindByIDAndIncViews(ctx context.Context, id string) (*domain.Post, error)
	// List returns a page of published posts matching filter, newest first,
	// and the total count.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
	// SetLike adds (liked=true) or removes (liked=false) userID from the
	// post's like-set and returns the size of the like-set after the update.
	// Both directions are idempotent at the document level.
	SetLike(ctx context.Context, id, userID string, liked bool) (int, error)
}
