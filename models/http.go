package models

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=3"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateBlogRequest is the body of POST /api/blogs.
// Likes is a pointer so that an omitted value can be told apart from 0.
type CreateBlogRequest struct {
	Title  string `json:"title" validate:"required,notblank"`
	URL    string `json:"url" validate:"required,notblank"`
	Author string `json:"author"`
	Likes  *int   `json:"likes"`
}

// BlogUpdate is the body of PUT /api/blogs/{id}.
// Only non-nil fields are applied (partial overwrite); the owner can never
// be changed through an update.
type BlogUpdate struct {
	Title  *string `json:"title,omitempty" validate:"omitempty,notblank"`
	URL    *string `json:"url,omitempty" validate:"omitempty,notblank"`
	Author *string `json:"author,omitempty"`
	Likes  *int    `json:"likes,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u BlogUpdate) IsEmpty() bool {
	return u.Title == nil && u.URL == nil && u.Author == nil && u.Likes == nil
}
