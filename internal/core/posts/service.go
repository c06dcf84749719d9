package posts

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{repo: repo}
}

// CreatePost creates a new post owned by the viewer.
// Flow: validate -> slugify -> uniqueness check -> insert.
// The check and the insert are separate store calls; the partial unique
// index on live slugs backstops the race, so a concurrent duplicate title
// still surfaces as ErrSlugTaken rather than a second row.
func (s *postService) CreatePost(ctx context.Context, viewer Viewer, req CreatePostRequest) (*Post, error) {
	if viewer.Anonymous() {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, NewValidationError("title", "title and content are required")
	}

	slug := Slugify(req.Title)
	if slug == "" {
		// Title contained no sluggable characters (e.g. all punctuation)
		return nil, NewValidationError("title", "title does not produce a valid slug")
	}

	taken, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	post := &Post{
		Title:     req.Title,
		Slug:      slug,
		Content:   req.Content,
		Tags:      tags,
		Status:    status,
		AuthorID:  viewer.AccountID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// ListPosts returns the posts visible to the viewer, newest first
func (s *postService) ListPosts(ctx context.Context, viewer Viewer, params ListParams) ([]*Post, error) {
	filter := BuildListFilter(viewer, params)
	return s.repo.List(ctx, filter)
}

// GetPostBySlug returns a published, live post by slug
func (s *postService) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	return s.repo.GetBySlug(ctx, PublishedBySlugFilter(slug))
}

// UpdatePost applies the allow-listed fields to the viewer's own post.
// Slug, author, and createdAt are immutable; the slug is never regenerated
// when the title changes.
func (s *postService) UpdatePost(ctx context.Context, viewer Viewer, id int64, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeMutation(viewer, post); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, NewValidationError("title", "title must not be empty")
		}
		post.Title = *req.Title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, NewValidationError("content", "content must not be empty")
		}
		post.Content = *req.Content
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// DeletePost soft-deletes the viewer's own post. Deletion is monotonic:
// a second delete sees DeletedAt set and reports not-found.
func (s *postService) DeletePost(ctx context.Context, viewer Viewer, id int64) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeMutation(viewer, post); err != nil {
		return err
	}

	now := time.Now().UTC()
	post.DeletedAt = &now
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
