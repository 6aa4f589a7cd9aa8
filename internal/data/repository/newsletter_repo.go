package repository

import (
	"context"
	"fmt"
	"strings"

	"ora-booking/internal/data/entity"
	"ora-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const subscriberColumns = `id, email, name, is_active, unsubscribe_token,
		subscribed_at, unsubscribed_at, created_at, updated_at`

type NewsletterRepository interface {
	Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error
	FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)
	FindByToken(ctx context.Context, token string) (*entity.NewsletterSubscriber, error)
	FindAll(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.NewsletterSubscriber, error)
	CountAll(ctx context.Context, activeOnly bool) (int64, error)
	Update(ctx context.Context, subscriber *entity.NewsletterSubscriber) error
}

type newsletterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNewsletterRepository(db database.PgxIface, log *zap.Logger) NewsletterRepository {
	return &newsletterRepository{
		db:  db,
		log: log.With(zap.String("repository", "newsletter")),
	}
}

func scanSubscriber(row pgx.Row) (*entity.NewsletterSubscriber, error) {
	var s entity.NewsletterSubscriber
	err := row.Scan(
		&s.ID,
		&s.Email,
		&s.Name,
		&s.IsActive,
		&s.UnsubscribeToken,
		&s.SubscribedAt,
		&s.UnsubscribedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *newsletterRepository) Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (` + subscriberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		subscriber.ID,
		subscriber.Email,
		subscriber.Name,
		subscriber.IsActive,
		subscriber.UnsubscribeToken,
		subscriber.SubscribedAt,
		subscriber.UnsubscribedAt,
		subscriber.CreatedAt,
		subscriber.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create newsletter subscriber",
			zap.Error(err),
			zap.String("email", subscriber.Email),
		)
		return fmt.Errorf("create subscriber %s: %w", subscriber.Email, err)
	}

	return nil
}

func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	subscriber, err := scanSubscriber(r.db.QueryRow(ctx,
		`SELECT `+subscriberColumns+` FROM newsletter_subscribers WHERE LOWER(email) = $1`,
		strings.ToLower(email)))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subscriber by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find subscriber by email %s: %w", email, err)
	}
	return subscriber, nil
}

func (r *newsletterRepository) FindByToken(ctx context.Context, token string) (*entity.NewsletterSubscriber, error) {
	subscriber, err := scanSubscriber(r.db.QueryRow(ctx,
		`SELECT `+subscriberColumns+` FROM newsletter_subscribers WHERE unsubscribe_token = $1`, token))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subscriber by token", zap.Error(err))
		return nil, fmt.Errorf("find subscriber by token: %w", err)
	}
	return subscriber, nil
}

func (r *newsletterRepository) FindAll(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.NewsletterSubscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM newsletter_subscribers`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY subscribed_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to query subscribers", zap.Error(err))
		return nil, fmt.Errorf("query subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*entity.NewsletterSubscriber
	for rows.Next() {
		subscriber, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber row: %w", err)
		}
		subscribers = append(subscribers, subscriber)
	}

	return subscribers, rows.Err()
}

func (r *newsletterRepository) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM newsletter_subscribers`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}

func (r *newsletterRepository) Update(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	query := `
		UPDATE newsletter_subscribers
		SET name = $2, is_active = $3, subscribed_at = $4, unsubscribed_at = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		subscriber.ID,
		subscriber.Name,
		subscriber.IsActive,
		subscriber.SubscribedAt,
		subscriber.UnsubscribedAt,
		subscriber.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update subscriber",
			zap.Error(err),
			zap.String("subscriber_id", subscriber.ID.String()),
		)
		return fmt.Errorf("update subscriber %s: %w", subscriber.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subscriber %s not found", subscriber.ID.String())
	}

	return nil
}
