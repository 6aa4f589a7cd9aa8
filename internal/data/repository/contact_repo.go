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

const contactColumns = `id, name, email, phone, subject, message, status,
		admin_notes, replied_at, created_at, updated_at`

type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	FindFiltered(ctx context.Context, status entity.ContactStatus, limit, offset int) ([]*entity.ContactMessage, error)
	CountFiltered(ctx context.Context, status entity.ContactStatus) (int64, error)
	Update(ctx context.Context, message *entity.ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func scanContactMessage(row pgx.Row) (*entity.ContactMessage, error) {
	var m entity.ContactMessage
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Subject,
		&m.Message,
		&m.Status,
		&m.AdminNotes,
		&m.RepliedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Phone,
		message.Subject,
		message.Message,
		message.Status,
		message.AdminNotes,
		message.RepliedAt,
		message.CreatedAt,
		message.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create contact message",
			zap.Error(err),
			zap.String("email", message.Email),
		)
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	message, err := scanContactMessage(r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact message by ID",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return nil, fmt.Errorf("find contact message by ID %s: %w", id.String(), err)
	}
	return message, nil
}

func (r *contactRepository) FindFiltered(ctx context.Context, status entity.ContactStatus, limit, offset int) ([]*entity.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query contact messages", zap.Error(err))
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.ContactMessage
	for rows.Next() {
		message, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message row: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

func (r *contactRepository) CountFiltered(ctx context.Context, status entity.ContactStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM contact_messages`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return count, nil
}

func (r *contactRepository) Update(ctx context.Context, message *entity.ContactMessage) error {
	query := `
		UPDATE contact_messages
		SET status = $2, admin_notes = $3, replied_at = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		message.ID,
		message.Status,
		message.AdminNotes,
		message.RepliedAt,
		message.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update contact message",
			zap.Error(err),
			zap.String("message_id", message.ID.String()),
		)
		return fmt.Errorf("update contact message %s: %w", message.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s not found", message.ID.String())
	}

	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete contact message",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return fmt.Errorf("delete contact message %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s not found", id.String())
	}

	return nil
}
