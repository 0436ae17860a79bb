package domain

import "time"

// Comment belongs to exactly one post. A non-empty ParentID marks it as a
// threaded reply to another comment.
type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	PostID     string    `json:"post"`
	AuthorID   string    `json:"-"`
	Author     *Author   `json:"author,omitempty"`
	ParentID   string    `json:"parentComment,omitempty"`
	Likes      []string  `json:"likes"`
	IsApproved bool      `json:"isApproved"`
	IsEdited   bool      `json:"isEdited"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LikedBy reports whether userID is in the comment's like-set.
func (c *Comment) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// IsReply reports whether the comment is a threaded reply.
func (c *Comment) IsReply() bool {
	return c.ParentID != ""
}
