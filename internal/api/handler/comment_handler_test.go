package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

type stubCommentService struct {
	comment *domain.Comment
	list    *ports.ListCommentsResult
	like    *ports.LikeResult
	err     error
	caller  domain.Identity

	addInput   ports.AddCommentInput
	listInput  ports.ListCommentsInput
	gotID      string
	gotContent string
}

func (s *stubCommentService) Add(_ context.Context, caller domain.Identity, input ports.AddCommentInput) (*domain.Comment, error) {
	s.caller = caller
	s.addInput = input
	return s.comment, s.err
}

func (s *stubCommentService) List(_ context.Context, input ports.ListCommentsInput) (*ports.ListCommentsResult, error) {
	s.listInput = input
	return s.list, s.err
}

func (s *stubCommentService) Update(_ context.Context, caller domain.Identity, id, content string) (*domain.Comment, error) {
	s.caller = caller
	s.gotID = id
	s.gotContent = content
	return s.comment, s.err
}

func (s *stubCommentService) Delete(_ context.Context, caller domain.Identity, id string) error {
	s.caller = caller
	s.gotID = id
	return s.err
}

func (s *stubCommentService) ToggleLike(_ context.Context, caller domain.Identity, id string) (*ports.LikeResult, error) {
	s.caller = caller
	s.gotID = id
	return s.like, s.err
}

func (s *stubCommentService) Approve(_ context.Context, id string) error {
	s.gotID = id
	return s.err
}

func TestCommentHandler_Add(t *testing.T) {
	svc := &stubCommentService{comment: &domain.Comment{ID: "comment-1", PostID: "post-1"}}
	h := NewCommentHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/comments",
		`{"content":"Great write-up!","postId":"post-1"}`)
	withIdentity(c, testIdentity)

	if err := h.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if svc.addInput.PostID != "post-1" || svc.addInput.ParentID != "" {
		t.Errorf("input not forwarded: %+v", svc.addInput)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Comment added successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestCommentHandler_Add_Reply(t *testing.T) {
	svc := &stubCommentService{comment: &domain.Comment{ID: "comment-2", PostID: "post-1", ParentID: "comment-1"}}
	h := NewCommentHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/comments",
		`{"content":"Thanks!","postId":"post-1","parentComment":"comment-1"}`)
	withIdentity(c, testIdentity)

	if err := h.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if svc.addInput.ParentID != "comment-1" {
		t.Errorf("parentComment not forwarded: %q", svc.addInput.ParentID)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Reply added successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestCommentHandler_Add_MissingPostID(t *testing.T) {
	h := NewCommentHandler(&stubCommentService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/comments", `{"content":"No target"}`)
	withIdentity(c, testIdentity)

	err := h.Add(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCommentHandler_List(t *testing.T) {
	svc := &stubCommentService{list: &ports.ListCommentsResult{
		Comments:   []*domain.Comment{{ID: "comment-1"}},
		Total:      25,
		Page:       1,
		Limit:      10,
		TotalPages: 3,
	}}
	h := NewCommentHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/comments?postId=post-1&page=1&limit=10", "")

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.listInput.PostID != "post-1" {
		t.Errorf("postId not forwarded: %q", svc.listInput.PostID)
	}

	body := decodeBody(t, rec)
	if body["totalComments"] != float64(25) {
		t.Errorf("expected totalComments 25, got %v", body["totalComments"])
	}
	if body["totalPages"] != float64(3) {
		t.Errorf("expected totalPages 3, got %v", body["totalPages"])
	}
}

func TestCommentHandler_List_RequiresPostID(t *testing.T) {
	h := NewCommentHandler(&stubCommentService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/comments", "")

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "postId is required" {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestCommentHandler_Update(t *testing.T) {
	svc := &stubCommentService{comment: &domain.Comment{ID: "comment-1", Content: "First!", IsEdited: true}}
	h := NewCommentHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/api/comments/comment-1", `{"content":"First!"}`)
	c.SetParamNames("id")
	c.SetParamValues("comment-1")
	withIdentity(c, testIdentity)

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.gotID != "comment-1" || svc.gotContent != "First!" {
		t.Errorf("update not forwarded: id=%q content=%q", svc.gotID, svc.gotContent)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Comment updated successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestCommentHandler_Delete(t *testing.T) {
	svc := &stubCommentService{}
	h := NewCommentHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/comments/comment-1", "")
	c.SetParamNames("id")
	c.SetParamValues("comment-1")
	withIdentity(c, testIdentity)

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Comment and replies deleted successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestCommentHandler_ToggleLike(t *testing.T) {
	svc := &stubCommentService{like: &ports.LikeResult{Liked: true, TotalLikes: 1}}
	h := NewCommentHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/comments/comment-1/like", "")
	c.SetParamNames("id")
	c.SetParamValues("comment-1")
	withIdentity(c, testIdentity)

	if err := h.ToggleLike(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Comment liked" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["totalLikes"] != float64(1) {
		t.Errorf("expected totalLikes 1, got %v", body["totalLikes"])
	}
}

func TestCommentHandler_Approve(t *testing.T) {
	svc := &stubCommentService{}
	h := NewCommentHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/api/comments/comment-1/approve", "")
	c.SetParamNames("id")
	c.SetParamValues("comment-1")

	if err := h.Approve(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.gotID != "comment-1" {
		t.Errorf("id not forwarded: %q", svc.gotID)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Comment approved" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
