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

const testimonialColumns = `id, customer_name, service_id, content, rating,
		is_approved, is_featured, is_active, created_at, updated_at`

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	FindApproved(ctx context.Context, featuredOnly bool, limit, offset int) ([]*entity.Testimonial, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Testimonial, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTestimonialRepository(db database.PgxIface, log *zap.Logger) TestimonialRepository {
	return &testimonialRepository{
		db:  db,
		log: log.With(zap.String("repository", "testimonial")),
	}
}

func scanTestimonial(row pgx.Row) (*entity.Testimonial, error) {
	var t entity.Testimonial
	err := row.Scan(
		&t.ID,
		&t.CustomerName,
		&t.ServiceID,
		&t.Content,
		&t.Rating,
		&t.IsApproved,
		&t.IsFeatured,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	query := `
		INSERT INTO testimonials (` + testimonialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		testimonial.ID,
		testimonial.CustomerName,
		testimonial.ServiceID,
		testimonial.Content,
		testimonial.Rating,
		testimonial.IsApproved,
		testimonial.IsFeatured,
		testimonial.IsActive,
		testimonial.CreatedAt,
		testimonial.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create testimonial", zap.Error(err))
		return fmt.Errorf("create testimonial: %w", err)
	}

	return nil
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	testimonial, err := scanTestimonial(r.db.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find testimonial by ID",
			zap.Error(err),
			zap.String("testimonial_id", id.String()),
		)
		return nil, fmt.Errorf("find testimonial by ID %s: %w", id.String(), err)
	}
	return testimonial, nil
}

func (r *testimonialRepository) FindApproved(ctx context.Context, featuredOnly bool, limit, offset int) ([]*entity.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE is_approved = TRUE AND is_active = TRUE`
	if featuredOnly {
		query += ` AND is_featured = TRUE`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	return r.queryTestimonials(ctx, query, limit, offset)
}

func (r *testimonialRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryTestimonials(ctx, query, limit, offset)
}

func (r *testimonialRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count testimonials: %w", err)
	}
	return count, nil
}

func (r *testimonialRepository) queryTestimonials(ctx context.Context, query string, args ...any) ([]*entity.Testimonial, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query testimonials", zap.Error(err))
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []*entity.Testimonial
	for rows.Next() {
		testimonial, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, testimonial)
	}

	return testimonials, rows.Err()
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	query := `
		UPDATE testimonials
		SET customer_name = $2, service_id = $3, content = $4, rating = $5,
		    is_approved = $6, is_featured = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		testimonial.ID,
		testimonial.CustomerName,
		testimonial.ServiceID,
		testimonial.Content,
		testimonial.Rating,
		testimonial.IsApproved,
		testimonial.IsFeatured,
		testimonial.IsActive,
		testimonial.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update testimonial",
			zap.Error(err),
			zap.String("testimonial_id", testimonial.ID.String()),
		)
		return fmt.Errorf("update testimonial %s: %w", testimonial.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("testimonial %s not found", testimonial.ID.String())
	}

	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete testimonial",
			zap.Error(err),
			zap.String("testimonial_id", id.String()),
		)
		return fmt.Errorf("delete testimonial %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("testimonial %s not found", id.String())
	}

	return nil
}
