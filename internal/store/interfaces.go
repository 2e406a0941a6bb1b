// Package store is the PostgreSQL persistence layer of the bloglist server.
//
// It exposes two repositories: [UserRepository] (the credential store) and
// [BlogRepository]. Both map driver failures onto the sentinel errors
// declared in errors.go and retry transient PostgreSQL failures.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-bloglist/models"
)

// UserRepository persists user accounts together with the set of blogs
// every user owns.
type UserRepository interface {
	// CreateUser inserts a new user. A taken username yields ErrUsernameTaken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the user with the given username, including
	// the password hash. Missing users yield ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// ListUsers returns every user with the reduced projections of the
	// blogs they own, in ownership order.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BlogRepository persists blogs and keeps the owner's blog set in sync.
type BlogRepository interface {
	// ListBlogs returns every blog in insertion order with its owner's
	// projection populated.
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	// GetBlogByID returns a single blog or ErrBlogNotFound.
	GetBlogByID(ctx context.Context, id string) (models.Blog, error)
	// CreateBlog inserts blog and appends its id to the owner's blog set in
	// the same transaction. An unknown owner yields ErrUserNotFound.
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	// UpdateBlog overwrites the non-nil fields of update and returns the
	// stored record. Missing blogs yield ErrBlogNotFound.
	UpdateBlog(ctx context.Context, id string, update models.BlogUpdate) (models.Blog, error)
	// DeleteBlog removes the blog and its id from the owner's blog set.
	// Missing blogs yield ErrBlogNotFound.
	DeleteBlog(ctx context.Context, id string) error
}

// HealthChecker reports whether the underlying database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
