package posts

import (
	"time"
)

// Post represents a blog post stored in the database.
// Posts are never hard-deleted; DeletedAt marks them invisible.
type Post struct {
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	Title     string     `json:"title" db:"title"`
	Slug      string     `json:"slug" db:"slug"`
	Content   string     `json:"content" db:"content"`
	Status    string     `json:"status" db:"status"`
	AuthorID  string     `json:"author" db:"author_id"`
	Tags      []string   `json:"tags" db:"tags"`
	ID        int64      `json:"id" db:"id"`
}

// Well-known status values. The status column is free-form; these are the
// two values the visibility rules care about.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// CreatePostRequest represents input for creating a new post.
// The author is always the authenticated viewer, never client-supplied.
type CreatePostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Status  string   `json:"status,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdatePostRequest represents a partial update to an existing post.
// Only these fields are updatable: slug, author, and createdAt are
// immutable after creation. Nil pointers (and a nil Tags slice) mean
// "leave unchanged".
type UpdatePostRequest struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Status  *string  `json:"status,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}
