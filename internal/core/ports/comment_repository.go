package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// ListCommentsFilter carries the query parameters for listing comments.
// List only returns approved comments for the given post.
type ListCommentsFilter struct {
	PostID string
	Page   int // 1-based
	Limit  int // capped by the service
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	List(ctx context.Context, filter ListCommentsFilter) ([]*domain.Comment, int64, error)
	// UpdateContent replaces the comment body and marks it edited.
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	// DeleteByPost removes every comment referencing the post and returns the
	// number removed.
	DeleteByPost(ctx context.Context, postID string) (int64, error)
	// DeleteReplies removes the direct replies of a comment. Grandchild
	// replies are left in place; the cascade is intentionally one level deep.
	DeleteReplies(ctx context.Context, parentID string) (int64, error)
	// SetLike adds or removes userID from the comment's like-set and returns
	// the size of the like-set after the update.
	SetLike(ctx context.Context, id, userID string, liked bool) (int, error)
	Approve(ctx context.Context, id string) error
}
