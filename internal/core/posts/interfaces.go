package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost validates input, derives the slug, checks uniqueness,
	// and persists a new post owned by the viewer
	CreatePost(ctx context.Context, viewer Viewer, req CreatePostRequest) (*Post, error)

	// ListPosts returns the posts visible to the viewer for the given
	// query parameters, newest first
	ListPosts(ctx context.Context, viewer Viewer, params ListParams) ([]*Post, error)

	// GetPostBySlug returns a published, live post by slug.
	// Drafts are not reachable here for anyone, including their author.
	GetPostBySlug(ctx context.Context, slug string) (*Post, error)

	// UpdatePost applies the allow-listed fields to the viewer's own post
	UpdatePost(ctx context.Context, viewer Viewer, id int64, req UpdatePostRequest) (*Post, error)

	// DeletePost soft-deletes the viewer's own post
	DeletePost(ctx context.Context, viewer Viewer, id int64) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and fills in store-assigned fields.
	// Returns ErrSlugTaken if a live post already holds the slug
	// (enforced by a partial unique index, which closes the
	// check-then-insert race).
	Create(ctx context.Context, post *Post) error

	// List executes a list filter, sorted by creation time descending
	List(ctx context.Context, filter ListFilter) ([]*Post, error)

	// GetByID loads a post regardless of status or deletion state.
	// Authorization decides what the caller may do with it.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// GetBySlug loads a single post matching the slug filter
	GetBySlug(ctx context.Context, filter SlugFilter) (*Post, error)

	// SlugExists reports whether a live post holds the slug
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Update saves mutable fields of a loaded post in place
	Update(ctx context.Context, post *Post) error
}
