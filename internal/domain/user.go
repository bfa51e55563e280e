package domain

import "context"

// User is a site administrator account. Password holds whatever the caller
// stored; the user service stores a bcrypt hash.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// InsertUser is the creation payload for a User.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, in InsertUser) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
