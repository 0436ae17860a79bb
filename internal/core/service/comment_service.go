package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

const defaultCommentPageSize = 10

type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, logger: logger}
}

// Add creates a comment, or a reply when ParentID is set. The target post
// must exist, and so must the parent comment when given. The parent is not
// required to belong to the same post.
func (s *CommentService) Add(ctx context.Context, caller domain.Identity, input ports.AddCommentInput) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, input.PostID); err != nil {
		return nil, err
	}
	if input.ParentID != "" {
		if _, err := s.comments.FindByID(ctx, input.ParentID); err != nil {
			if errors.Is(err, domain.ErrCommentNotFound) {
				return nil, domain.ErrParentCommentNotFound
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		Content:    input.Content,
		PostID:     input.PostID,
		AuthorID:   caller.ID,
		ParentID:   input.ParentID,
		Likes:      []string{},
		IsApproved: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		s.logger.Error().Err(err).Str("post_id", input.PostID).Msg("failed to create comment")
		return nil, err
	}
	created.Author = &domain.Author{ID: caller.ID, Username: caller.Username, Email: caller.Email}

	s.logger.Info().Str("comment_id", created.ID).Str("post_id", input.PostID).Bool("reply", created.IsReply()).Msg("comment created")
	return created, nil
}

// List returns a page of approved comments for a post, newest first, with
// authors populated.
func (s *CommentService) List(ctx context.Context, input ports.ListCommentsInput) (*ports.ListCommentsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultCommentPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	comments, total, err := s.comments.List(ctx, ports.ListCommentsFilter{
		PostID: input.PostID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	if err := s.populateCommentAuthors(ctx, comments); err != nil {
		return nil, err
	}

	return &ports.ListCommentsResult{
		Comments:   comments,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Update replaces the content and unconditionally marks the comment edited.
func (s *CommentService) Update(ctx context.Context, caller domain.Identity, id, content string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanModify(comment.AuthorID) {
		return nil, domain.ErrForbidden
	}

	if err := s.comments.UpdateContent(ctx, id, content); err != nil {
		s.logger.Error().Err(err).Str("comment_id", id).Msg("failed to update comment")
		return nil, err
	}

	comment.Content = content
	comment.IsEdited = true
	comment.UpdatedAt = time.Now().UTC()

	if err := s.populateCommentAuthors(ctx, []*domain.Comment{comment}); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment and its direct replies. The cascade is one
// level deep: replies to replies are left in place.
func (s *CommentService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.CanModify(comment.AuthorID) {
		return domain.ErrForbidden
	}

	removed, err := s.comments.DeleteReplies(ctx, comment.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("comment_id", id).Msg("failed to delete replies")
		return err
	}
	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		s.logger.Error().Err(err).Str("comment_id", id).Msg("failed to delete comment")
		return err
	}

	s.logger.Info().Str("comment_id", id).Int64("replies_removed", removed).Msg("comment deleted")
	return nil
}

// ToggleLike flips the caller's membership in the comment's like-set and
// reports the like count of the saved document.
func (s *CommentService) ToggleLike(ctx context.Context, caller domain.Identity, id string) (*ports.LikeResult, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	liked := !comment.LikedBy(caller.ID)
	total, err := s.comments.SetLike(ctx, comment.ID, caller.ID, liked)
	if err != nil {
		return nil, err
	}

	return &ports.LikeResult{Liked: liked, TotalLikes: total}, nil
}

// Approve marks the comment visible in public listings. There is no inverse
// operation.
func (s *CommentService) Approve(ctx context.Context, id string) error {
	if _, err := s.comments.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.comments.Approve(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("comment_id", id).Msg("failed to approve comment")
		return err
	}
	s.logger.Info().Str("comment_id", id).Msg("comment approved")
	return nil
}

func (s *CommentService) populateCommentAuthors(ctx context.Context, comments []*domain.Comment) error {
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}
	authors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if u, ok := authors[c.AuthorID]; ok {
			c.Author = &domain.Author{ID: u.ID, Username: u.Username, Email: u.Email}
		}
	}
	return nil
}
