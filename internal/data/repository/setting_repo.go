package repository

import (
	"context"
	"fmt"

	"ora-booking/internal/data/entity"
	"ora-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const settingColumns = `id, key, value, type, "group", created_at, updated_at`

type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*entity.Setting, error)
	FindByGroup(ctx context.Context, group string) ([]*entity.Setting, error)
	FindAll(ctx context.Context) ([]*entity.Setting, error)
	Upsert(ctx context.Context, setting *entity.Setting) error
}

type settingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingRepository(db database.PgxIface, log *zap.Logger) SettingRepository {
	return &settingRepository{
		db:  db,
		log: log.With(zap.String("repository", "setting")),
	}
}

func scanSetting(row pgx.Row) (*entity.Setting, error) {
	var s entity.Setting
	err := row.Scan(
		&s.ID,
		&s.Key,
		&s.Value,
		&s.Type,
		&s.Group,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingRepository) FindByKey(ctx context.Context, key string) (*entity.Setting, error) {
	setting, err := scanSetting(r.db.QueryRow(ctx,
		`SELECT `+settingColumns+` FROM settings WHERE key = $1`, key))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find setting",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("find setting %s: %w", key, err)
	}
	return setting, nil
}

func (r *settingRepository) FindByGroup(ctx context.Context, group string) ([]*entity.Setting, error) {
	query := `SELECT ` + settingColumns + ` FROM settings WHERE "group" = $1 ORDER BY key`
	return r.querySettings(ctx, query, group)
}

func (r *settingRepository) FindAll(ctx context.Context) ([]*entity.Setting, error) {
	query := `SELECT ` + settingColumns + ` FROM settings ORDER BY "group", key`
	return r.querySettings(ctx, query)
}

func (r *settingRepository) querySettings(ctx context.Context, query string, args ...any) ([]*entity.Setting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query settings", zap.Error(err))
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	var settings []*entity.Setting
	for rows.Next() {
		setting, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting row: %w", err)
		}
		settings = append(settings, setting)
	}

	return settings, rows.Err()
}

func (r *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	query := `
		INSERT INTO settings (id, key, value, type, "group", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, type = EXCLUDED.type, "group" = EXCLUDED."group",
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		setting.ID,
		setting.Key,
		setting.Value,
		setting.Type,
		setting.Group,
		setting.CreatedAt,
		setting.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert setting",
			zap.Error(err),
			zap.String("key", setting.Key),
		)
		return fmt.Errorf("upsert setting %s: %w", setting.Key, err)
	}

	return nil
}
