package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"blogql-be/internal/entities"
	"blogql-be/internal/models"
)

// PostRepository defines the interface for post database operations.
// FindByID returns (nil, nil) when no post matches the ID.
type PostRepository interface {
	Create(ctx context.Context, title, content, authorID string) (*entities.Post, error)
	FindByID(ctx context.Context, id string) (*entities.Post, error)
	Update(ctx context.Context, id string, patch *models.PostPatch) (*entities.Post, error)
	SetPublished(ctx context.Context, id string, published bool) (*entities.Post, error)
	Delete(ctx context.Context, id string) error
	GetByAuthorID(ctx context.Context, authorID string, publishedOnly bool) ([]*entities.Post, error)
	GetPublished(ctx context.Context) ([]*entities.Post, error)
}

type postRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = "id, title, content, published, author_id, created_at, updated_at"

func scanPost(row *sql.Row) (*entities.Post, error) {
	var post entities.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Published,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post into the database (unpublished by default)
func (r *postRepository) Create(ctx context.Context, title, content, authorID string) (*entities.Post, error) {
	query := `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, title, content, authorID))
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// FindByID finds a post by ID (UUID)
func (r *postRepository) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE id = $1
	`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	return post, nil
}

// Update applies a sparse patch: only the patch's non-nil fields appear in the
// SET clause, omitted fields are left untouched by the write.
func (r *postRepository) Update(ctx context.Context, id string, patch *models.PostPatch) (*entities.Post, error) {
	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	if patch.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *patch.Title)
		argPos++
	}
	if patch.Content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", argPos))
		args = append(args, *patch.Content)
		argPos++
	}
	if len(setClauses) == 0 {
		return nil, fmt.Errorf("empty patch")
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE posts
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argPos, postColumns)

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// SetPublished writes only the published flag
func (r *postRepository) SetPublished(ctx context.Context, id string, published bool) (*entities.Post, error) {
	query := `
		UPDATE posts
		SET published = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, published, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}

	return post, nil
}

// Delete removes a post by ID
func (r *postRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

// GetByAuthorID returns posts by a given author, newest first, optionally
// restricted to published ones
func (r *postRepository) GetByAuthorID(ctx context.Context, authorID string, publishedOnly bool) ([]*entities.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE author_id = $1
	`
	if publishedOnly {
		query += " AND published = TRUE"
	}
	query += " ORDER BY created_at DESC"

	return r.queryPosts(ctx, query, authorID)
}

// GetPublished returns all published posts, newest first
func (r *postRepository) GetPublished(ctx context.Context) ([]*entities.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE published = TRUE
		ORDER BY created_at DESC
	`

	return r.queryPosts(ctx, query)
}

func (r *postRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*entities.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []*entities.Post
	for rows.Next() {
		var post entities.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.Published,
			&post.AuthorID,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}
