package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// CreatePostInput carries all data needed to create a post. IsPublished is a
// pointer so an omitted field (default true) can be told apart from an
// explicit false.
type CreatePostInput struct {
	Title       string
	Content     string
	Tags        []string
	IsPublished *bool
}

// UpdatePostInput carries a partial update. Nil fields are left unchanged;
// this is how an explicit `"isPublished": false` survives the trip through
// the boundary without being mistaken for an omitted field.
type UpdatePostInput struct {
	Title       *string
	Content     *string
	Tags        *[]string
	IsPublished *bool
}

// ListPostsInput carries all parameters for the public post listing.
type ListPostsInput struct {
	Search string
	Tag    string
	Page   int
	Limit  int
}

// ListPostsResult is returned by List.
type ListPostsResult struct {
	Posts      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Liked      bool
	TotalLikes int
}

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, caller domain.Identity, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context, input ListPostsInput) (*ListPostsResult, error)
	// Get returns the post and increments its view counter as a side effect.
	// Unpublished posts are reported as not found.
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, caller domain.Identity, id string, input UpdatePostInput) (*domain.Post, error)
	// Delete removes the post and every comment referencing it.
	Delete(ctx context.Context, caller domain.Identity, id string) error
	ToggleLike(ctx context.Context, caller domain.Identity, id string) (*LikeResult, error)
}
