package models

import "time"

// User represents an account that owns blogs and authenticates with a
// username/password pair.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user (UUID v7).
	ID string `json:"id"`

	// Username is the unique login of the user. At least 3 characters long.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// BlogIDs is the ordered set of blog identifiers owned by the user,
	// as stored on the users row.
	BlogIDs []string `json:"-"`

	// Blogs is the reduced projection of the owned blogs. It is populated
	// when users are listed and is an empty list for a fresh account.
	Blogs []BlogProjection `json:"blogs"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// UserProjection is the reduced view of a User embedded into a listed Blog.
// It intentionally carries no credential data.
type UserProjection struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Projection returns the reduced view of u.
func (u User) Projection() UserProjection {
	return UserProjection{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
