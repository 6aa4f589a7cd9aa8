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

const faqColumns = `id, question, answer, category, sort_order, is_active, created_at, updated_at`

type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error)
	FindActive(ctx context.Context, category string) ([]*entity.FAQ, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.FAQ, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type faqRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFAQRepository(db database.PgxIface, log *zap.Logger) FAQRepository {
	return &faqRepository{
		db:  db,
		log: log.With(zap.String("repository", "faq")),
	}
}

func scanFAQ(row pgx.Row) (*entity.FAQ, error) {
	var f entity.FAQ
	err := row.Scan(
		&f.ID,
		&f.Question,
		&f.Answer,
		&f.Category,
		&f.SortOrder,
		&f.IsActive,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	query := `
		INSERT INTO faqs (` + faqColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.SortOrder,
		faq.IsActive,
		faq.CreatedAt,
		faq.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create FAQ", zap.Error(err))
		return fmt.Errorf("create FAQ: %w", err)
	}

	return nil
}

func (r *faqRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error) {
	faq, err := scanFAQ(r.db.QueryRow(ctx,
		`SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find FAQ by ID",
			zap.Error(err),
			zap.String("faq_id", id.String()),
		)
		return nil, fmt.Errorf("find FAQ by ID %s: %w", id.String(), err)
	}
	return faq, nil
}

func (r *faqRepository) FindActive(ctx context.Context, category string) ([]*entity.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE is_active = TRUE`
	args := []any{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY sort_order, created_at`

	return r.queryFAQs(ctx, query, args...)
}

func (r *faqRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs ORDER BY sort_order, created_at LIMIT $1 OFFSET $2`
	return r.queryFAQs(ctx, query, limit, offset)
}

func (r *faqRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count FAQs: %w", err)
	}
	return count, nil
}

func (r *faqRepository) queryFAQs(ctx context.Context, query string, args ...any) ([]*entity.FAQ, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query FAQs", zap.Error(err))
		return nil, fmt.Errorf("query FAQs: %w", err)
	}
	defer rows.Close()

	var faqs []*entity.FAQ
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scan FAQ row: %w", err)
		}
		faqs = append(faqs, faq)
	}

	return faqs, rows.Err()
}

func (r *faqRepository) Update(ctx context.Context, faq *entity.FAQ) error {
	query := `
		UPDATE faqs
		SET question = $2, answer = $3, category = $4, sort_order = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.SortOrder,
		faq.IsActive,
		faq.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update FAQ",
			zap.Error(err),
			zap.String("faq_id", faq.ID.String()),
		)
		return fmt.Errorf("update FAQ %s: %w", faq.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("FAQ %s not found", faq.ID.String())
	}

	return nil
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete FAQ",
			zap.Error(err),
			zap.String("faq_id", id.String()),
		)
		return fmt.Errorf("delete FAQ %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("FAQ %s not found", id.String())
	}

	return nil
}
