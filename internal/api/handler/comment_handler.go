package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-api/internal/api/metrics"
	"github.com/inkpress/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Add handles POST /api/comments. Creates a top-level comment, or a reply
// when parentComment is supplied.
func (h *CommentHandler) Add(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Add(c.Request().Context(), caller, ports.AddCommentInput{
		Content:  req.Content,
		PostID:   req.PostID,
		ParentID: req.ParentComment,
	})
	if err != nil {
		return err
	}

	msg := "Comment added successfully"
	kind := "comment"
	if comment.IsReply() {
		msg = "Reply added successfully"
		kind = "reply"
	}
	metrics.CommentsCreatedTotal.WithLabelValues(kind).Inc()

	return c.JSON(http.StatusCreated, commentMessageResponse{
		Message: msg,
		Comment: comment,
	})
}

// List handles GET /api/comments?postId=... Open endpoint; only approved
// comments appear.
func (h *CommentHandler) List(c echo.Context) error {
	var q listCommentsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if q.PostID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "postId is required")
	}

	result, err := h.service.List(c.Request().Context(), ports.ListCommentsInput{
		PostID: q.PostID,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listCommentsResponse{
		TotalComments: result.Total,
		CurrentPage:   result.Page,
		TotalPages:    result.TotalPages,
		Comments:      result.Comments,
	})
}

// Update handles PUT /api/comments/:id (owner or admin).
func (h *CommentHandler) Update(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, commentMessageResponse{
		Message: "Comment updated successfully",
		Comment: comment,
	})
}

// Delete handles DELETE /api/comments/:id (owner or admin). Direct replies
// go with it.
func (h *CommentHandler) Delete(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Comment and replies deleted successfully"})
}

// ToggleLike handles POST /api/comments/:id/like.
func (h *CommentHandler) ToggleLike(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.ToggleLike(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	msg := "Comment unliked"
	action := "unliked"
	if result.Liked {
		msg = "Comment liked"
		action = "liked"
	}
	metrics.LikesToggledTotal.WithLabelValues("comment", action).Inc()

	return c.JSON(http.StatusOK, likeResponse{
		Message:    msg,
		TotalLikes: result.TotalLikes,
	})
}

// Approve handles PUT /api/comments/:id/approve. RBAC restricts the route to
// admins before this handler runs.
func (h *CommentHandler) Approve(c echo.Context) error {
	if err := h.service.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Comment approved"})
}
