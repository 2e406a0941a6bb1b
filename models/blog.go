// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Blog is a bookmarked blog entry owned by a User.
type Blog struct {
	// ID is the opaque unique identifier of the blog (UUID v7).
	ID string `json:"id"`

	// Title is required and must not be blank.
	Title string `json:"title"`

	// URL is required and must not be blank.
	URL string `json:"url"`

	// Author is optional.
	Author string `json:"author"`

	// Likes defaults to 0 when absent on creation.
	Likes int `json:"likes"`

	// UserID references the owning user. Empty for blogs stored before
	// authentication was introduced.
	UserID string `json:"-"`

	// User is the reduced projection of the owner. Nil when the blog has
	// no owner on record.
	User *UserProjection `json:"user,omitempty"`

	CreatedAt time.Time `json:"-"`
}

// BlogProjection is the reduced view of a Blog embedded into a listed User.
type BlogProjection struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Author string `json:"author"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// BlogStats aggregates the likes of all stored blogs.
type BlogStats struct {
	Count      int           `json:"count"`
	TotalLikes int           `json:"total_likes"`
	Favorite   *FavoriteBlog `json:"favorite"`
}

// FavoriteBlog is the blog with the most likes.
type FavoriteBlog struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}
