package posts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock implementation of Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, filter ListFilter) ([]*Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, filter SlugFilter) (*Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	alice := Viewer{AccountID: "alice"}

	t.Run("creates post with derived slug and author from viewer", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("SlugExists", ctx, "hello-world").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*posts.Post")).Return(nil)

		created, err := service.CreatePost(ctx, alice, CreatePostRequest{
			Title:   "Hello World!",
			Content: "First post.",
			Status:  StatusDraft,
		})

		require.NoError(t, err)
		assert.Equal(t, "hello-world", created.Slug)
		assert.Equal(t, "alice", created.AuthorID)
		assert.Equal(t, StatusDraft, created.Status)
		assert.Nil(t, created.DeletedAt)
		assert.False(t, created.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("status defaults to draft", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("SlugExists", ctx, mock.Anything).Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		created, err := service.CreatePost(ctx, alice, CreatePostRequest{
			Title:   "No Status",
			Content: "body",
		})

		require.NoError(t, err)
		assert.Equal(t, StatusDraft, created.Status)
	})

	t.Run("rejects missing title or content", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		_, err := service.CreatePost(ctx, alice, CreatePostRequest{Title: "", Content: "body"})
		assert.True(t, IsValidationError(err))

		_, err = service.CreatePost(ctx, alice, CreatePostRequest{Title: "Title", Content: "   "})
		assert.True(t, IsValidationError(err))

		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects title that slugifies to nothing", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		_, err := service.CreatePost(ctx, alice, CreatePostRequest{Title: "!!!", Content: "body"})

		assert.True(t, IsValidationError(err))
		repo.AssertNotCalled(t, "SlugExists")
	})

	t.Run("returns conflict when a live post holds the slug", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("SlugExists", ctx, "hello-world").Return(true, nil)

		_, err := service.CreatePost(ctx, alice, CreatePostRequest{
			Title:   "Hello, World",
			Content: "body",
		})

		assert.True(t, IsConflict(err))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("surfaces conflict from the insert when the check raced", func(t *testing.T) {
		// Two concurrent creations can both pass SlugExists; the partial
		// unique index makes the second insert fail with ErrSlugTaken
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("SlugExists", ctx, "hello-world").Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(ErrSlugTaken)

		_, err := service.CreatePost(ctx, alice, CreatePostRequest{
			Title:   "Hello World",
			Content: "body",
		})

		assert.True(t, IsConflict(err))
	})

	t.Run("rejects anonymous viewer", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		_, err := service.CreatePost(ctx, Viewer{}, CreatePostRequest{Title: "T", Content: "c"})

		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	alice := Viewer{AccountID: "alice"}

	livePost := func() *Post {
		return &Post{
			ID:       7,
			Title:    "Original",
			Slug:     "original",
			Content:  "original body",
			Status:   StatusDraft,
			Tags:     []string{"go"},
			AuthorID: "alice",
		}
	}

	t.Run("applies allow-listed fields only", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		existing := livePost()
		repo.On("GetByID", ctx, int64(7)).Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)

		newTitle := "Updated Title"
		newStatus := StatusPublished
		updated, err := service.UpdatePost(ctx, alice, 7, UpdatePostRequest{
			Title:  &newTitle,
			Status: &newStatus,
			Tags:   []string{"go", "web"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
		assert.Equal(t, StatusPublished, updated.Status)
		assert.Equal(t, []string{"go", "web"}, updated.Tags)
		// Slug never regenerates from a title change
		assert.Equal(t, "original", updated.Slug)
		assert.Equal(t, "alice", updated.AuthorID)
		repo.AssertExpectations(t)
	})

	t.Run("nil fields leave the post unchanged", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		existing := livePost()
		repo.On("GetByID", ctx, int64(7)).Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)

		updated, err := service.UpdatePost(ctx, alice, 7, UpdatePostRequest{})

		require.NoError(t, err)
		assert.Equal(t, "Original", updated.Title)
		assert.Equal(t, "original body", updated.Content)
		assert.Equal(t, []string{"go"}, updated.Tags)
	})

	t.Run("rejects blank title or content", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("GetByID", ctx, int64(7)).Return(livePost(), nil)

		blank := "  "
		_, err := service.UpdatePost(ctx, alice, 7, UpdatePostRequest{Title: &blank})

		assert.True(t, IsValidationError(err))
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("non-author gets forbidden", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("GetByID", ctx, int64(7)).Return(livePost(), nil)

		title := "hijack"
		_, err := service.UpdatePost(ctx, Viewer{AccountID: "bob"}, 7, UpdatePostRequest{Title: &title})

		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("soft-deleted post reports not found", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		deleted := livePost()
		now := time.Now().UTC()
		deleted.DeletedAt = &now
		repo.On("GetByID", ctx, int64(7)).Return(deleted, nil)

		title := "too late"
		_, err := service.UpdatePost(ctx, alice, 7, UpdatePostRequest{Title: &title})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing post reports not found", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("GetByID", ctx, int64(99)).Return(nil, ErrNotFound)

		title := "nope"
		_, err := service.UpdatePost(ctx, alice, 99, UpdatePostRequest{Title: &title})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	alice := Viewer{AccountID: "alice"}

	t.Run("soft delete sets deletedAt", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		existing := &Post{ID: 7, AuthorID: "alice"}
		repo.On("GetByID", ctx, int64(7)).Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)

		err := service.DeletePost(ctx, alice, 7)

		require.NoError(t, err)
		require.NotNil(t, existing.DeletedAt)
		repo.AssertExpectations(t)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		now := time.Now().UTC()
		repo.On("GetByID", ctx, int64(7)).Return(&Post{ID: 7, AuthorID: "alice", DeletedAt: &now}, nil)

		err := service.DeletePost(ctx, alice, 7)

		assert.ErrorIs(t, err, ErrNotFound)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("non-author gets forbidden", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("GetByID", ctx, int64(7)).Return(&Post{ID: 7, AuthorID: "alice"}, nil)

		err := service.DeletePost(ctx, Viewer{AccountID: "bob"}, 7)

		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("hands the built filter to the repository", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		expected := BuildListFilter(Viewer{}, ListParams{Tag: "go"})
		repo.On("List", ctx, expected).Return([]*Post{}, nil)

		_, err := service.ListPosts(ctx, Viewer{}, ListParams{Tag: "go"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("List", ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := service.ListPosts(ctx, Viewer{}, ListParams{})

		assert.Error(t, err)
	})
}

func TestGetPostBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("always queries published live posts", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("GetBySlug", ctx, SlugFilter{
			Slug:     "hello-world",
			Status:   StatusPublished,
			LiveOnly: true,
		}).Return(&Post{Slug: "hello-world", Status: StatusPublished}, nil)

		found, err := service.GetPostBySlug(ctx, "hello-world")

		require.NoError(t, err)
		assert.Equal(t, "hello-world", found.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("draft is not reachable by slug", func(t *testing.T) {
		// The repository is only ever asked for published posts, so a
		// draft slug comes back ErrNotFound no matter who asks
		repo := new(MockPostRepository)
		service := NewPostService(repo)

		repo.On("GetBySlug", ctx, mock.Anything).Return(nil, ErrNotFound)

		_, err := service.GetPostBySlug(ctx, "my-draft")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
