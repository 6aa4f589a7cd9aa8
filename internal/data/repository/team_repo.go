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

const teamMemberColumns = `id, name, position, bio, photo, sort_order, is_active, created_at, updated_at`

type TeamRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	FindActive(ctx context.Context) ([]*entity.TeamMember, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.TeamMember, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type teamRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTeamRepository(db database.PgxIface, log *zap.Logger) TeamRepository {
	return &teamRepository{
		db:  db,
		log: log.With(zap.String("repository", "team")),
	}
}

func scanTeamMember(row pgx.Row) (*entity.TeamMember, error) {
	var m entity.TeamMember
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Position,
		&m.Bio,
		&m.Photo,
		&m.SortOrder,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *teamRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (` + teamMemberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Position,
		member.Bio,
		member.Photo,
		member.SortOrder,
		member.IsActive,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create team member",
			zap.Error(err),
			zap.String("name", member.Name),
		)
		return fmt.Errorf("create team member %s: %w", member.Name, err)
	}

	return nil
}

func (r *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	member, err := scanTeamMember(r.db.QueryRow(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find team member by ID",
			zap.Error(err),
			zap.String("member_id", id.String()),
		)
		return nil, fmt.Errorf("find team member by ID %s: %w", id.String(), err)
	}
	return member, nil
}

func (r *teamRepository) FindActive(ctx context.Context) ([]*entity.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE is_active = TRUE ORDER BY sort_order, name`
	return r.queryMembers(ctx, query)
}

func (r *teamRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members ORDER BY sort_order, name LIMIT $1 OFFSET $2`
	return r.queryMembers(ctx, query, limit, offset)
}

func (r *teamRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count team members: %w", err)
	}
	return count, nil
}

func (r *teamRepository) queryMembers(ctx context.Context, query string, args ...any) ([]*entity.TeamMember, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query team members", zap.Error(err))
		return nil, fmt.Errorf("query team members: %w", err)
	}
	defer rows.Close()

	var members []*entity.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member row: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, position = $3, bio = $4, photo = $5, sort_order = $6,
		    is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Position,
		member.Bio,
		member.Photo,
		member.SortOrder,
		member.IsActive,
		member.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update team member",
			zap.Error(err),
			zap.String("member_id", member.ID.String()),
		)
		return fmt.Errorf("update team member %s: %w", member.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("team member %s not found", member.ID.String())
	}

	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete team member",
			zap.Error(err),
			zap.String("member_id", id.String()),
		)
		return fmt.Errorf("delete team member %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("team member %s not found", id.String())
	}

	return nil
}
