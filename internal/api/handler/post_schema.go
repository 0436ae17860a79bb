package handler

import "github.com/inkpress/blog-api/internal/core/domain"

// --- Request types ---

type createPostRequest struct {
	Title   string   `json:"title"   validate:"required,min=3,max=150"`
	Content string   `json:"content" validate:"required,min=10"`
	Tags    []string `json:"tags"`
	// Pointer so "omitted" (default true) is distinguishable from an
	// explicit false.
	IsPublished *bool `json:"isPublished"`
}

// updatePostRequest carries a partial update: nil fields are left unchanged,
// so an explicit isPublished:false survives binding.
type updatePostRequest struct {
	Title       *string   `json:"title"        validate:"omitempty,min=3,max=150"`
	Content     *string   `json:"content"      validate:"omitempty,min=10"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"isPublished"`
}

type listPostsQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Tag    string `query:"tag"`
}

// --- Response types ---

type postMessageResponse struct {
	Message string       `json:"message"`
	Post    *domain.Post `json:"post"`
}

type listPostsResponse struct {
	TotalPosts  int64          `json:"totalPosts"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	Posts       []*domain.Post `json:"posts"`
}

type likeResponse struct {
	Message    string `json:"message"`
	TotalLikes int    `json:"totalLikes"`
}

type messageResponse struct {
	Message string `json:"message"`
}
