package handler

import "github.com/inkpress/blog-api/internal/core/domain"

// --- Request types ---

type addCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
	PostID  string `json:"postId"  validate:"required"`
	// Optional: a non-empty value makes this a threaded reply.
	ParentComment string `json:"parentComment"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

type listCommentsQuery struct {
	PostID string `query:"postId"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

// --- Response types ---

type commentMessageResponse struct {
	Message string          `json:"message"`
	Comment *domain.Comment `json:"comment"`
}

type listCommentsResponse struct {
	TotalComments int64             `json:"totalComments"`
	CurrentPage   int               `json:"currentPage"`
	TotalPages    int               `json:"totalPages"`
	Comments      []*domain.Comment `json:"comments"`
}
