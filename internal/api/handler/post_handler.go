package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-api/internal/api/metrics"
	"github.com/inkpress/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), caller, ports.CreatePostInput{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(strconv.FormatBool(post.IsPublished)).Inc()

	return c.JSON(http.StatusCreated, postMessageResponse{
		Message: "Post created successfully",
		Post:    post,
	})
}

// List handles GET /api/posts. Open endpoint; only published posts appear.
func (h *PostHandler) List(c echo.Context) error {
	var q listPostsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.service.List(c.Request().Context(), ports.ListPostsInput{
		Search: q.Search,
		Tag:    q.Tag,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		TotalPosts:  result.Total,
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages,
		Posts:       result.Posts,
	})
}

// Get handles GET /api/posts/:id. Reading a post counts as a view.
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.PostViewsTotal.Inc()

	return c.JSON(http.StatusOK, post)
}

// Update handles PUT /api/posts/:id (owner or admin).
func (h *PostHandler) Update(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.UpdatePostInput{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postMessageResponse{
		Message: "Post updated successfully",
		Post:    post,
	})
}

// Delete handles DELETE /api/posts/:id (owner or admin). All comments on the
// post are removed with it.
func (h *PostHandler) Delete(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Post and related comments deleted"})
}

// ToggleLike handles POST /api/posts/:id/like.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.ToggleLike(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	msg := "Post unliked"
	action := "unliked"
	if result.Liked {
		msg = "Post liked"
		action = "liked"
	}
	metrics.LikesToggledTotal.WithLabelValues("post", action).Inc()

	return c.JSON(http.StatusOK, likeResponse{
		Message:    msg,
		TotalLikes: result.TotalLikes,
	})
}
