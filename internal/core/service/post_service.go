package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

const (
	defaultPostPageSize = 5
	maxPageSize         = 100
)

type PostService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, comments ports.CommentRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, comments: comments, users: users, logger: logger}
}

// Create persists a new post owned by the caller. Publication defaults to
// true when the field is omitted.
func (s *PostService) Create(ctx context.Context, caller domain.Identity, input ports.CreatePostInput) (*domain.Post, error) {
	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:       input.Title,
		Content:     input.Content,
		AuthorID:    caller.ID,
		Tags:        tags,
		IsPublished: published,
		Likes:       []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}
	created.Author = &domain.Author{ID: caller.ID, Username: caller.Username, Email: caller.Email}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", caller.ID).Msg("post created")
	return created, nil
}

// List returns a page of published posts, newest first, with authors
// populated.
func (s *PostService) List(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPostPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	posts, total, err := s.posts.List(ctx, ports.ListPostsFilter{
		Search: input.Search,
		Tag:    input.Tag,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	if err := s.populatePostAuthors(ctx, posts); err != nil {
		return nil, err
	}

	return &ports.ListPostsResult{
		Posts:      posts,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Get returns a single published post and increments its view counter.
// Unpublished posts are indistinguishable from absent ones to the caller.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.FindByIDAndIncViews(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, domain.ErrPostNotFound
	}

	if err := s.populatePostAuthors(ctx, []*domain.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial update. Only non-nil input fields are touched, so
// an explicit isPublished=false is honored while an omitted field is not.
func (s *PostService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanModify(post.AuthorID) {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Tags != nil {
		post.Tags = *input.Tags
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to update post")
		return nil, err
	}

	if err := s.populatePostAuthors(ctx, []*domain.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post and every comment referencing it. The comment
// purge runs first so an interruption never leaves comments pointing at a
// missing post. The two deletes are not transactional; a crash in between
// can leave the post without comments, which is the accepted direction.
func (s *PostService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.CanModify(post.AuthorID) {
		return domain.ErrForbidden
	}

	removed, err := s.comments.DeleteByPost(ctx, post.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to delete post comments")
		return err
	}
	if err := s.posts.Delete(ctx, post.ID); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to delete post")
		return err
	}

	s.logger.Info().Str("post_id", id).Int64("comments_removed", removed).Msg("post deleted")
	return nil
}

// ToggleLike flips the caller's membership in the post's like-set and
// reports the like count of the saved document.
func (s *PostService) ToggleLike(ctx context.Context, caller domain.Identity, id string) (*ports.LikeResult, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	liked := !post.LikedBy(caller.ID)
	total, err := s.posts.SetLike(ctx, post.ID, caller.ID, liked)
	if err != nil {
		return nil, err
	}

	return &ports.LikeResult{Liked: liked, TotalLikes: total}, nil
}

func (s *PostService) populatePostAuthors(ctx context.Context, posts []*domain.Post) error {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
	}
	authors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if u, ok := authors[p.AuthorID]; ok {
			p.Author = &domain.Author{ID: u.ID, Username: u.Username, Email: u.Email}
		}
	}
	return nil
}

// totalPages computes ceil(total/limit) for pagination envelopes.
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
