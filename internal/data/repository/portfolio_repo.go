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

const portfolioColumns = `id, title, description, image, service_id, sort_order, is_active, created_at, updated_at`

type PortfolioRepository interface {
	Create(ctx context.Context, item *entity.Portfolio) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Portfolio, error)
	FindActive(ctx context.Context, serviceID *uuid.UUID, limit, offset int) ([]*entity.Portfolio, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Portfolio, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, item *entity.Portfolio) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type portfolioRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPortfolioRepository(db database.PgxIface, log *zap.Logger) PortfolioRepository {
	return &portfolioRepository{
		db:  db,
		log: log.With(zap.String("repository", "portfolio")),
	}
}

func scanPortfolio(row pgx.Row) (*entity.Portfolio, error) {
	var p entity.Portfolio
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.ServiceID,
		&p.SortOrder,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepository) Create(ctx context.Context, item *entity.Portfolio) error {
	query := `
		INSERT INTO portfolio_items (` + portfolioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Image,
		item.ServiceID,
		item.SortOrder,
		item.IsActive,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create portfolio item",
			zap.Error(err),
			zap.String("title", item.Title),
		)
		return fmt.Errorf("create portfolio item %s: %w", item.Title, err)
	}

	return nil
}

func (r *portfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Portfolio, error) {
	item, err := scanPortfolio(r.db.QueryRow(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio_items WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find portfolio item by ID",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return nil, fmt.Errorf("find portfolio item by ID %s: %w", id.String(), err)
	}
	return item, nil
}

func (r *portfolioRepository) FindActive(ctx context.Context, serviceID *uuid.UUID, limit, offset int) ([]*entity.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE is_active = TRUE`
	args := []any{}
	if serviceID != nil {
		query += fmt.Sprintf(` AND service_id = $%d`, len(args)+1)
		args = append(args, *serviceID)
	}
	query += fmt.Sprintf(` ORDER BY sort_order, created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return r.queryItems(ctx, query, args...)
}

func (r *portfolioRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`
	return r.queryItems(ctx, query, limit, offset)
}

func (r *portfolioRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM portfolio_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count portfolio items: %w", err)
	}
	return count, nil
}

func (r *portfolioRepository) queryItems(ctx context.Context, query string, args ...any) ([]*entity.Portfolio, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query portfolio items", zap.Error(err))
		return nil, fmt.Errorf("query portfolio items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Portfolio
	for rows.Next() {
		item, err := scanPortfolio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio row: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *portfolioRepository) Update(ctx context.Context, item *entity.Portfolio) error {
	query := `
		UPDATE portfolio_items
		SET title = $2, description = $3, image = $4, service_id = $5,
		    sort_order = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Image,
		item.ServiceID,
		item.SortOrder,
		item.IsActive,
		item.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update portfolio item",
			zap.Error(err),
			zap.String("item_id", item.ID.String()),
		)
		return fmt.Errorf("update portfolio item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("portfolio item %s not found", item.ID.String())
	}

	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete portfolio item",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return fmt.Errorf("delete portfolio item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("portfolio item %s not found", id.String())
	}

	return nil
}
