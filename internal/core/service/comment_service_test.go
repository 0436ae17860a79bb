package service

import (
	"context"
	"errors"
	"testing"

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

type commentFixture struct {
	*fixture
	svc  *CommentService
	post *domain.Post
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	f := newFixture()
	cf := &commentFixture{
		fixture: f,
		svc:     NewCommentService(f.comments, f.posts, f.users, discardLogger),
	}
	post, err := f.svc.Create(context.Background(), f.alice, createInput("Commented post", "A post that collects comments."))
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	cf.post = post
	return cf
}

func (cf *commentFixture) addComment(t *testing.T, caller domain.Identity, content, parentID string) *domain.Comment {
	t.Helper()
	c, err := cf.svc.Add(context.Background(), caller, ports.AddCommentInput{
		Content:  content,
		PostID:   cf.post.ID,
		ParentID: parentID,
	})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	return c
}

// ---------------------------------------------------------------------------
// Add
// ---------------------------------------------------------------------------

func TestCommentService_Add(t *testing.T) {
	cf := newCommentFixture(t)

	comment := cf.addComment(t, cf.bob, "Great write-up!", "")

	if comment.PostID != cf.post.ID {
		t.Errorf("expected post %q, got %q", cf.post.ID, comment.PostID)
	}
	if !comment.IsApproved {
		t.Error("new comments must be approved by default")
	}
	if comment.IsEdited {
		t.Error("new comments must not be marked edited")
	}
	if comment.IsReply() {
		t.Error("top-level comment must not read as a reply")
	}
	if comment.Author == nil || comment.Author.Username != "bob" {
		t.Errorf("expected populated author, got %+v", comment.Author)
	}
}

func TestCommentService_Add_Reply(t *testing.T) {
	cf := newCommentFixture(t)
	parent := cf.addComment(t, cf.bob, "Great write-up!", "")

	reply := cf.addComment(t, cf.alice, "Thanks!", parent.ID)

	if !reply.IsReply() {
		t.Error("reply must read as a reply")
	}
	if reply.ParentID != parent.ID {
		t.Errorf("expected parent %q, got %q", parent.ID, reply.ParentID)
	}
}

func TestCommentService_Add_MissingPost(t *testing.T) {
	cf := newCommentFixture(t)

	_, err := cf.svc.Add(context.Background(), cf.bob, ports.AddCommentInput{
		Content: "Into the void",
		PostID:  "post-999",
	})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_Add_MissingParent(t *testing.T) {
	cf := newCommentFixture(t)

	_, err := cf.svc.Add(context.Background(), cf.bob, ports.AddCommentInput{
		Content:  "Orphan reply",
		PostID:   cf.post.ID,
		ParentID: "comment-999",
	})
	if !errors.Is(err, domain.ErrParentCommentNotFound) {
		t.Fatalf("expected ErrParentCommentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestCommentService_List_OnlyApprovedForPost(t *testing.T) {
	cf := newCommentFixture(t)
	visible := cf.addComment(t, cf.bob, "Visible comment", "")

	hidden, _ := cf.comments.Create(context.Background(), &domain.Comment{
		Content: "Awaiting moderation", PostID: cf.post.ID, AuthorID: cf.bob.ID, IsApproved: false,
	})
	other, err := cf.fixture.svc.Create(context.Background(), cf.alice, createInput("Another post", "A second post with its own thread."))
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	_, _ = cf.comments.Create(context.Background(), &domain.Comment{
		Content: "Elsewhere", PostID: other.ID, AuthorID: cf.bob.ID, IsApproved: true,
	})

	result, err := cf.svc.List(context.Background(), ports.ListCommentsInput{PostID: cf.post.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Total != 1 {
		t.Fatalf("expected 1 comment, got %d", result.Total)
	}
	if result.Comments[0].ID != visible.ID {
		t.Errorf("expected %q, got %q", visible.ID, result.Comments[0].ID)
	}
	if result.Comments[0].ID == hidden.ID {
		t.Error("unapproved comment leaked into the listing")
	}
}

func TestCommentService_List_Defaults(t *testing.T) {
	cf := newCommentFixture(t)

	result, err := cf.svc.List(context.Background(), ports.ListCommentsInput{PostID: cf.post.ID, Page: 0, Limit: -3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", result.Page)
	}
	if result.Limit != defaultCommentPageSize {
		t.Errorf("expected default limit %d, got %d", defaultCommentPageSize, result.Limit)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestCommentService_Update_MarksEdited(t *testing.T) {
	cf := newCommentFixture(t)
	comment := cf.addComment(t, cf.bob, "Frist!", "")

	updated, err := cf.svc.Update(context.Background(), cf.bob, comment.ID, "First!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Content != "First!" {
		t.Errorf("content not updated: %q", updated.Content)
	}
	if !updated.IsEdited {
		t.Error("edited flag must be set")
	}

	stored, _ := cf.comments.FindByID(context.Background(), comment.ID)
	if !stored.IsEdited || stored.Content != "First!" {
		t.Errorf("stored comment not updated: %+v", stored)
	}
}

func TestCommentService_Update_NonOwnerForbidden(t *testing.T) {
	cf := newCommentFixture(t)
	comment := cf.addComment(t, cf.bob, "Bob's comment", "")

	_, err := cf.svc.Update(context.Background(), cf.alice, comment.ID, "Rewritten")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCommentService_Update_AdminAllowed(t *testing.T) {
	cf := newCommentFixture(t)
	comment := cf.addComment(t, cf.bob, "Rude remark", "")

	updated, err := cf.svc.Update(context.Background(), cf.admin, comment.ID, "[removed by moderator]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Content != "[removed by moderator]" {
		t.Errorf("unexpected content: %q", updated.Content)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestCommentService_Delete_CascadesOneLevel(t *testing.T) {
	cf := newCommentFixture(t)
	parent := cf.addComment(t, cf.bob, "Parent", "")
	reply := cf.addComment(t, cf.alice, "Direct reply", parent.ID)
	grandchild := cf.addComment(t, cf.bob, "Reply to the reply", reply.ID)
	sibling := cf.addComment(t, cf.alice, "Unrelated comment", "")

	if err := cf.svc.Delete(context.Background(), cf.bob, parent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cf.comments.FindByID(context.Background(), parent.ID); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Error("parent must be deleted")
	}
	if _, err := cf.comments.FindByID(context.Background(), reply.ID); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Error("direct reply must be deleted")
	}
	// The cascade stops after one level.
	if _, err := cf.comments.FindByID(context.Background(), grandchild.ID); err != nil {
		t.Error("reply-to-reply must survive the cascade")
	}
	if _, err := cf.comments.FindByID(context.Background(), sibling.ID); err != nil {
		t.Error("unrelated comment must survive the cascade")
	}
}

func TestCommentService_Delete_NonOwnerForbidden(t *testing.T) {
	cf := newCommentFixture(t)
	comment := cf.addComment(t, cf.bob, "Bob's comment", "")

	err := cf.svc.Delete(context.Background(), cf.alice, comment.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := cf.comments.FindByID(context.Background(), comment.ID); err != nil {
		t.Error("comment must still exist after forbidden delete")
	}
}

// ---------------------------------------------------------------------------
// ToggleLike / Approve
// ---------------------------------------------------------------------------

func TestCommentService_ToggleLike_Involution(t *testing.T) {
	cf := newCommentFixture(t)
	comment := cf.addComment(t, cf.bob, "Likeable comment", "")

	first, err := cf.svc.ToggleLike(context.Background(), cf.alice, comment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Liked || first.TotalLikes != 1 {
		t.Fatalf("expected liked with 1 total, got %+v", first)
	}

	second, err := cf.svc.ToggleLike(context.Background(), cf.alice, comment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Liked || second.TotalLikes != 0 {
		t.Fatalf("expected unliked back to 0 total, got %+v", second)
	}
}

func TestCommentService_Approve(t *testing.T) {
	cf := newCommentFixture(t)
	hidden, _ := cf.comments.Create(context.Background(), &domain.Comment{
		Content: "Awaiting moderation", PostID: cf.post.ID, AuthorID: cf.bob.ID, IsApproved: false,
	})

	if err := cf.svc.Approve(context.Background(), hidden.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := cf.comments.FindByID(context.Background(), hidden.ID)
	if !stored.IsApproved {
		t.Error("comment must be approved")
	}
}

func TestCommentService_Approve_Missing(t *testing.T) {
	cf := newCommentFixture(t)

	err := cf.svc.Approve(context.Background(), "comment-999")
	if !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
