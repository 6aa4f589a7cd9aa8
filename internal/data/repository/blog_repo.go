package repository

import (
	"context"
	"fmt"

	"ora-booking/internal/data/entity"
	"ora-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const blogPostColumns = `id, title, slug, excerpt, content, image, author_name,
		is_published, published_at, created_at, updated_at`

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	FindPublished(ctx context.Context, limit, offset int) ([]*entity.BlogPost, error)
	CountPublished(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.BlogPost, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogRepository(db database.PgxIface, log *zap.Logger) BlogRepository {
	return &blogRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog")),
	}
}

func scanBlogPost(row pgx.Row) (*entity.BlogPost, error) {
	var p entity.BlogPost
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.Image,
		&p.AuthorName,
		&p.IsPublished,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (` + blogPostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Image,
		post.AuthorName,
		post.IsPublished,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create blog post",
			zap.Error(err),
			zap.String("slug", post.Slug),
		)
		return fmt.Errorf("create blog post %s: %w", post.Slug, err)
	}

	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	post, err := scanBlogPost(r.db.QueryRow(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by ID",
			zap.Error(err),
			zap.String("post_id", id.String()),
		)
		return nil, fmt.Errorf("find blog post by ID %s: %w", id.String(), err)
	}
	return post, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := scanBlogPost(r.db.QueryRow(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = $1`, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find blog post by slug %s: %w", slug, err)
	}
	return post, nil
}

func (r *blogRepository) FindPublished(ctx context.Context, limit, offset int) ([]*entity.BlogPost, error) {
	query := `
		SELECT ` + blogPostColumns + ` FROM blog_posts
		WHERE is_published = TRUE
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryPosts(ctx, query, limit, offset)
}

func (r *blogRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts WHERE is_published = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count published blog posts: %w", err)
	}
	return count, nil
}

func (r *blogRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryPosts(ctx, query, limit, offset)
}

func (r *blogRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return count, nil
}

func (r *blogRepository) queryPosts(ctx context.Context, query string, args ...any) ([]*entity.BlogPost, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query blog posts", zap.Error(err))
		return nil, fmt.Errorf("query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*entity.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (r *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, excerpt = $4, content = $5, image = $6,
		    author_name = $7, is_published = $8, published_at = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Image,
		post.AuthorName,
		post.IsPublished,
		post.PublishedAt,
		post.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update blog post",
			zap.Error(err),
			zap.String("post_id", post.ID.String()),
		)
		return fmt.Errorf("update blog post %s: %w", post.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", post.ID.String())
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete blog post",
			zap.Error(err),
			zap.String("post_id", id.String()),
		)
		return fmt.Errorf("delete blog post %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", id.String())
	}

	return nil
}
