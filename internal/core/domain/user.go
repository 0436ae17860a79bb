package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserInactive = errors.New("user account is inactive")
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the authenticated caller attached to a request after the
// bearer token has been verified.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the caller holds the elevated role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanModify implements the single authorization rule applied to every
// mutation: the resource owner or an admin may modify it.
func (i Identity) CanModify(authorID string) bool {
	return i.ID == authorID || i.IsAdmin()
}
