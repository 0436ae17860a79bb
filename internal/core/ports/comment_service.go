package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// AddCommentInput carries all data needed to create a comment or reply.
// A non-empty ParentID makes the comment a threaded reply.
type AddCommentInput struct {
	Content  string
	PostID   string
	ParentID string
}

// ListCommentsInput carries the parameters for the public comment listing.
type ListCommentsInput struct {
	PostID string
	Page   int
	Limit  int
}

// ListCommentsResult is returned by List.
type ListCommentsResult struct {
	Comments   []*domain.Comment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	Add(ctx context.Context, caller domain.Identity, input AddCommentInput) (*domain.Comment, error)
	List(ctx context.Context, input ListCommentsInput) (*ListCommentsResult, error)
	// Update replaces the content and marks the comment edited.
	Update(ctx context.Context, caller domain.Identity, id, content string) (*domain.Comment, error)
	// Delete removes the comment and its direct replies.
	Delete(ctx context.Context, caller domain.Identity, id string) error
	ToggleLike(ctx context.Context, caller domain.Identity, id string) (*LikeResult, error)
	// Approve marks the comment visible in public listings. Admin only;
	// moderation is one-directional.
	Approve(ctx context.Context, id string) error
}
