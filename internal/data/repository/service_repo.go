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

const serviceColumns = `id, title, slug, description, long_description, icon, image,
		price, price_unit, duration_minutes, is_featured, sort_order, is_active,
		created_at, updated_at`

// TopService is a dashboard aggregate: a service with its completed
// booking count.
type TopService struct {
	Service      entity.Service
	BookingCount int64
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Service, error)
	FindActive(ctx context.Context, featuredOnly bool, limit, offset int) ([]*entity.Service, error)
	CountActive(ctx context.Context, featuredOnly bool) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Service, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindPackages(ctx context.Context, serviceID uuid.UUID) ([]*entity.ServicePackage, error)
	FindPackageByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error)

	TopByCompletedBookings(ctx context.Context, limit int) ([]*TopService, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Slug,
		&s.Description,
		&s.LongDescription,
		&s.Icon,
		&s.Image,
		&s.Price,
		&s.PriceUnit,
		&s.DurationMinutes,
		&s.IsFeatured,
		&s.SortOrder,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.Title,
		service.Slug,
		service.Description,
		service.LongDescription,
		service.Icon,
		service.Image,
		service.Price,
		service.PriceUnit,
		service.DurationMinutes,
		service.IsFeatured,
		service.SortOrder,
		service.IsActive,
		service.CreatedAt,
		service.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("slug", service.Slug),
		)
		return fmt.Errorf("create service %s: %w", service.Slug, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	service, err := scanService(r.db.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}
	return service, nil
}

func (r *serviceRepository) FindBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	service, err := scanService(r.db.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find service by slug %s: %w", slug, err)
	}
	return service, nil
}

func (r *serviceRepository) FindActive(ctx context.Context, featuredOnly bool, limit, offset int) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE is_active = TRUE`
	if featuredOnly {
		query += ` AND is_featured = TRUE`
	}
	query += ` ORDER BY sort_order, title LIMIT $1 OFFSET $2`

	return r.queryServices(ctx, query, limit, offset)
}

func (r *serviceRepository) CountActive(ctx context.Context, featuredOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM services WHERE is_active = TRUE`
	if featuredOnly {
		query += ` AND is_featured = TRUE`
	}

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active services: %w", err)
	}
	return count, nil
}

func (r *serviceRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY sort_order, title LIMIT $1 OFFSET $2`
	return r.queryServices(ctx, query, limit, offset)
}

func (r *serviceRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return count, nil
}

func (r *serviceRepository) queryServices(ctx context.Context, query string, args ...any) ([]*entity.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query services", zap.Error(err))
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}

	return services, rows.Err()
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services
		SET title = $2, slug = $3, description = $4, long_description = $5, icon = $6,
		    image = $7, price = $8, price_unit = $9, duration_minutes = $10,
		    is_featured = $11, sort_order = $12, is_active = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		service.ID,
		service.Title,
		service.Slug,
		service.Description,
		service.LongDescription,
		service.Icon,
		service.Image,
		service.Price,
		service.PriceUnit,
		service.DurationMinutes,
		service.IsFeatured,
		service.SortOrder,
		service.IsActive,
		service.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", service.ID.String()),
		)
		return fmt.Errorf("update service %s: %w", service.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s not found", service.ID.String())
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return fmt.Errorf("delete service %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s not found", id.String())
	}

	r.log.Info("Service deleted", zap.String("service_id", id.String()))
	return nil
}

func (r *serviceRepository) FindPackages(ctx context.Context, serviceID uuid.UUID) ([]*entity.ServicePackage, error) {
	query := `
		SELECT id, service_id, name, description, price, is_popular, is_active, created_at, updated_at
		FROM service_packages
		WHERE service_id = $1 AND is_active = TRUE
		ORDER BY price
	`

	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		r.log.Error("Failed to find service packages",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return nil, fmt.Errorf("find packages for service %s: %w", serviceID.String(), err)
	}
	defer rows.Close()

	var packages []*entity.ServicePackage
	for rows.Next() {
		var p entity.ServicePackage
		err := rows.Scan(
			&p.ID,
			&p.ServiceID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.IsPopular,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan service package: %w", err)
		}
		packages = append(packages, &p)
	}

	return packages, rows.Err()
}

func (r *serviceRepository) FindPackageByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error) {
	query := `
		SELECT id, service_id, name, description, price, is_popular, is_active, created_at, updated_at
		FROM service_packages
		WHERE id = $1
	`

	var p entity.ServicePackage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.ServiceID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.IsPopular,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	return &p, nil
}

func (r *serviceRepository) TopByCompletedBookings(ctx context.Context, limit int) ([]*TopService, error) {
	query := `
		SELECT ` + prefixedServiceColumns("s") + `, COUNT(b.id) AS booking_count
		FROM services s
		JOIN booking_services bs ON bs.service_id = s.id
		JOIN bookings b ON b.id = bs.booking_id AND b.status = 'completed'
		GROUP BY s.id
		ORDER BY booking_count DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find top services", zap.Error(err))
		return nil, fmt.Errorf("find top services: %w", err)
	}
	defer rows.Close()

	var top []*TopService
	for rows.Next() {
		var t TopService
		err := rows.Scan(
			&t.Service.ID,
			&t.Service.Title,
			&t.Service.Slug,
			&t.Service.Description,
			&t.Service.LongDescription,
			&t.Service.Icon,
			&t.Service.Image,
			&t.Service.Price,
			&t.Service.PriceUnit,
			&t.Service.DurationMinutes,
			&t.Service.IsFeatured,
			&t.Service.SortOrder,
			&t.Service.IsActive,
			&t.Service.CreatedAt,
			&t.Service.UpdatedAt,
			&t.BookingCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan top service: %w", err)
		}
		top = append(top, &t)
	}

	return top, rows.Err()
}

func prefixedServiceColumns(alias string) string {
	return alias + `.id, ` + alias + `.title, ` + alias + `.slug, ` + alias + `.description, ` +
		alias + `.long_description, ` + alias + `.icon, ` + alias + `.image, ` + alias + `.price, ` +
		alias + `.price_unit, ` + alias + `.duration_minutes, ` + alias + `.is_featured, ` +
		alias + `.sort_order, ` + alias + `.is_active, ` + alias + `.created_at, ` + alias + `.updated_at`
}
