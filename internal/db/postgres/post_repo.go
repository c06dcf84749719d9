package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"Inkwell/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// likeEscaper neutralizes ILIKE metacharacters so search terms match as
// literal substrings. Postgres treats backslash as the escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table.
// The partial unique index on live slugs turns a concurrent duplicate
// title into ErrSlugTaken instead of a second row.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (title, slug, content, tags, status, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.Title, post.Slug, post.Content, pq.Array(post.Tags),
		post.Status, post.AuthorID, post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		// Check for unique constraint violations
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "posts_live_slug_key") {
			return posts.ErrSlugTaken
		}
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("author not found: %s", post.AuthorID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// List executes a list filter built by the visibility core.
// WHERE clauses are assembled from the filter's predicate fields; sort is
// always newest-first.
func (r *postgresPostRepo) List(ctx context.Context, filter posts.ListFilter) ([]*posts.Post, error) {
	whereConditions := []string{}
	args := []interface{}{}
	paramIndex := 1

	if filter.LiveOnly {
		whereConditions = append(whereConditions, "deleted_at IS NULL")
	}

	if filter.HasStatus {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", paramIndex))
		args = append(args, filter.Status)
		paramIndex++
	}

	// DraftAuthorID and AuthorID are deliberately separate clauses:
	// draft listings stay restricted to the viewer even when an author
	// param names someone else.
	if filter.DraftAuthorID != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("author_id = $%d", paramIndex))
		args = append(args, filter.DraftAuthorID)
		paramIndex++
	}

	if filter.AuthorID != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("author_id = $%d", paramIndex))
		args = append(args, filter.AuthorID)
		paramIndex++
	}

	if filter.Search != "" {
		whereConditions = append(whereConditions,
			fmt.Sprintf("(title ILIKE '%%' || $%d || '%%' OR content ILIKE '%%' || $%d || '%%')", paramIndex, paramIndex))
		args = append(args, likeEscaper.Replace(filter.Search))
		paramIndex++
	}

	if filter.Tag != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("$%d = ANY(tags)", paramIndex))
		args = append(args, filter.Tag)
		paramIndex++
	}

	whereClause := "TRUE"
	if len(whereConditions) > 0 {
		whereClause = strings.Join(whereConditions, " AND ")
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, title, slug, content, tags, status, author_id,
		       created_at, updated_at, deleted_at
		FROM posts
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, paramIndex, paramIndex+1)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	results := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		results = append(results, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post results: %w", err)
	}

	return results, nil
}

// GetByID loads a post regardless of status or deletion state
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, title, slug, content, tags, status, author_id,
		       created_at, updated_at, deleted_at
		FROM posts
		WHERE id = $1
	`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}
	return post, nil
}

// GetBySlug loads a single post matching the slug filter
func (r *postgresPostRepo) GetBySlug(ctx context.Context, filter posts.SlugFilter) (*posts.Post, error) {
	query := `
		SELECT id, title, slug, content, tags, status, author_id,
		       created_at, updated_at, deleted_at
		FROM posts
		WHERE slug = $1 AND status = $2
	`
	if filter.LiveOnly {
		query += " AND deleted_at IS NULL"
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, filter.Slug, filter.Status))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return post, nil
}

// SlugExists reports whether a live post holds the slug
func (r *postgresPostRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1 AND deleted_at IS NULL)`
	if err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

// Update saves the mutable fields of a loaded post.
// Slug, author, and created_at are immutable and intentionally absent from
// the SET list.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, tags = $3, status = $4,
		    updated_at = $5, deleted_at = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(
		ctx, query,
		post.Title, post.Content, pq.Array(post.Tags), post.Status,
		post.UpdatedAt, post.DeletedAt, post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// scanPost reads one post row from a *sql.Row or *sql.Rows
func scanPost(row interface{ Scan(...interface{}) error }) (*posts.Post, error) {
	var post posts.Post
	var tags pq.StringArray
	var deletedAt sql.NullTime

	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &tags,
		&post.Status, &post.AuthorID,
		&post.CreatedAt, &post.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Tags = []string(tags)
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if deletedAt.Valid {
		post.DeletedAt = &deletedAt.Time
	}

	return &post, nil
}
