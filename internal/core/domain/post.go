package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrParentCommentNotFound = errors.New("parent comment not found")
var ErrInvalidID = errors.New("invalid id")
var ErrForbidden = errors.New("access forbidden")

// Author is the public projection of a post or comment author: username and
// email only, never the credential fields.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post is a blog entry owned by its author.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"-"`
	Author      *Author   `json:"author,omitempty"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"isPublished"`
	Likes       []string  `json:"likes"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LikedBy reports whether userID is in the post's like-set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
