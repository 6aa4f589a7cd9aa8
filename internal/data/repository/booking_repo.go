package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ora-booking/internal/data/entity"
	"ora-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, booking_code, user_id, customer_name, customer_email, customer_phone,
		customer_address, customer_city, customer_state, customer_message,
		service_date, service_time, status, amount, discount_amount, coupon_id,
		technician_notes, admin_notes, confirmed_at, started_at, completed_at, cancelled_at,
		created_at, updated_at`

// BookingFilter narrows admin listing queries. All fields optional.
type BookingFilter struct {
	Status   *entity.BookingStatus
	Search   *string // matches code, customer name, email, phone
	DateFrom *time.Time
	DateTo   *time.Time
}

// BookingExportRow is one line of the CSV export.
type BookingExportRow struct {
	BookingCode   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceNames  string
	ServiceDate   time.Time
	ServiceTime   string
	Status        entity.BookingStatus
	Amount        float64
	CreatedAt     time.Time
}

type BookingRepository interface {
	// CreateWithServices persists the booking, its line items, the
	// initial history entry and the coupon usage bump in one transaction.
	CreateWithServices(ctx context.Context, booking *entity.Booking, items []*entity.BookingService) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCode(ctx context.Context, code string) (*entity.Booking, error)
	FindByCodeAndEmail(ctx context.Context, code, email string) (*entity.Booking, error)
	FindFiltered(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	CountFiltered(ctx context.Context, filter BookingFilter) (int64, error)
	FindServices(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingService, error)
	FindHistory(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingStatusHistory, error)
	// UpdateWithHistory writes the mutated booking and appends the
	// history entry in one transaction.
	UpdateWithHistory(ctx context.Context, booking *entity.Booking, hist *entity.BookingStatusHistory) error
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error)

	// Export
	StreamByCreatedRange(ctx context.Context, from, to time.Time, fn func(*BookingExportRow) error) error

	// Dashboard aggregates
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error)
	SumCompletedAmount(ctx context.Context) (float64, error)
	SumCompletedAmountSince(ctx context.Context, since time.Time) (float64, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateWithServices(ctx context.Context, booking *entity.Booking, items []*entity.BookingService) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking: %w", err)
	}
	defer tx.Rollback(ctx)

	insertBooking := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	_, err = tx.Exec(ctx, insertBooking,
		booking.ID,
		booking.BookingCode,
		booking.UserID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.CustomerAddress,
		booking.CustomerCity,
		booking.CustomerState,
		booking.CustomerMessage,
		booking.ServiceDate,
		booking.ServiceTime,
		booking.Status,
		booking.Amount,
		booking.DiscountAmount,
		booking.CouponID,
		booking.TechnicianNotes,
		booking.AdminNotes,
		booking.ConfirmedAt,
		booking.StartedAt,
		booking.CompletedAt,
		booking.CancelledAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
		)
		return fmt.Errorf("insert booking %s: %w", booking.BookingCode, err)
	}

	insertItem := `
		INSERT INTO booking_services (id, booking_id, service_id, package_id, quantity, unit_price, total_price, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, item := range items {
		_, err = tx.Exec(ctx, insertItem,
			item.ID,
			item.BookingID,
			item.ServiceID,
			item.PackageID,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
			item.Notes,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert booking line",
				zap.Error(err),
				zap.String("booking_code", booking.BookingCode),
				zap.String("service_id", item.ServiceID.String()),
			)
			return fmt.Errorf("insert booking line for %s: %w", booking.BookingCode, err)
		}
	}

	if err := insertHistoryTx(ctx, tx, &entity.BookingStatusHistory{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: booking.CreatedAt},
		BookingID:  booking.ID,
		FromStatus: booking.Status,
		ToStatus:   booking.Status,
		ChangedBy:  "system",
	}); err != nil {
		return fmt.Errorf("insert booking history for %s: %w", booking.BookingCode, err)
	}

	if booking.CouponID != nil {
		// Guarded bump: a concurrent create may have consumed the last
		// use after our validation read.
		tag, err := tx.Exec(ctx,
			`UPDATE coupons SET used_count = used_count + 1, updated_at = NOW()
			 WHERE id = $1 AND (usage_limit IS NULL OR used_count < usage_limit)`,
			*booking.CouponID,
		)
		if err != nil {
			return fmt.Errorf("bump coupon usage for %s: %w", booking.BookingCode, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("bump coupon usage for %s: %w", booking.BookingCode, entity.ErrCouponExhausted)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking %s: %w", booking.BookingCode, err)
	}

	return nil
}

func insertHistoryTx(ctx context.Context, tx pgx.Tx, hist *entity.BookingStatusHistory) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO booking_status_history (id, booking_id, from_status, to_status, changed_by, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		hist.ID,
		hist.BookingID,
		hist.FromStatus,
		hist.ToStatus,
		hist.ChangedBy,
		hist.Note,
		hist.CreatedAt,
	)
	return err
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.BookingCode,
		&b.UserID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.CustomerAddress,
		&b.CustomerCity,
		&b.CustomerState,
		&b.CustomerMessage,
		&b.ServiceDate,
		&b.ServiceTime,
		&b.Status,
		&b.Amount,
		&b.DiscountAmount,
		&b.CouponID,
		&b.TechnicianNotes,
		&b.AdminNotes,
		&b.ConfirmedAt,
		&b.StartedAt,
		&b.CompletedAt,
		&b.CancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByCode(ctx context.Context, code string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_code = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by code",
			zap.Error(err),
			zap.String("booking_code", code),
		)
		return nil, fmt.Errorf("find booking by code %s: %w", code, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByCodeAndEmail(ctx context.Context, code, email string) (*entity.Booking, error) {
	// Emails are stored as submitted; match case-insensitively.
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_code = $1 AND LOWER(customer_email) = LOWER($2)`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, code, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by code and email",
			zap.Error(err),
			zap.String("booking_code", code),
		)
		return nil, fmt.Errorf("find booking by code %s: %w", code, err)
	}

	return booking, nil
}

func buildBookingFilter(filter BookingFilter, args []any) (string, []any) {
	var conds []string

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(booking_code ILIKE $%d OR customer_name ILIKE $%d OR customer_email ILIKE $%d OR customer_phone ILIKE $%d)",
			n, n, n, n))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("service_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("service_date <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *bookingRepository) FindFiltered(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	where, args := buildBookingFilter(filter, nil)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+bookingColumns+` FROM bookings%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) CountFiltered(ctx context.Context, filter BookingFilter) (int64, error) {
	where, args := buildBookingFilter(filter, nil)
	query := `SELECT COUNT(*) FROM bookings` + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindServices(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingService, error) {
	query := `
		SELECT id, booking_id, service_id, package_id, quantity, unit_price, total_price, notes, created_at
		FROM booking_services
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking lines",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking lines for %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var items []*entity.BookingService
	for rows.Next() {
		var item entity.BookingService
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.ServiceID,
			&item.PackageID,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.Notes,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking line: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *bookingRepository) FindHistory(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingStatusHistory, error) {
	query := `
		SELECT id, booking_id, from_status, to_status, changed_by, note, created_at
		FROM booking_status_history
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking history",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking history for %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var history []*entity.BookingStatusHistory
	for rows.Next() {
		var h entity.BookingStatusHistory
		err := rows.Scan(
			&h.ID,
			&h.BookingID,
			&h.FromStatus,
			&h.ToStatus,
			&h.ChangedBy,
			&h.Note,
			&h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking history: %w", err)
		}
		history = append(history, &h)
	}

	return history, rows.Err()
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, amount = $3, technician_notes = $4, admin_notes = $5,
		    confirmed_at = $6, started_at = $7, completed_at = $8, cancelled_at = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Status,
		booking.Amount,
		booking.TechnicianNotes,
		booking.AdminNotes,
		booking.ConfirmedAt,
		booking.StartedAt,
		booking.CompletedAt,
		booking.CancelledAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateWithHistory(ctx context.Context, booking *entity.Booking, hist *entity.BookingStatusHistory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update booking: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE bookings
		SET status = $2, amount = $3, technician_notes = $4, admin_notes = $5,
		    confirmed_at = $6, started_at = $7, completed_at = $8, cancelled_at = $9,
		    updated_at = $10
		WHERE id = $1
	`,
		booking.ID,
		booking.Status,
		booking.Amount,
		booking.TechnicianNotes,
		booking.AdminNotes,
		booking.ConfirmedAt,
		booking.StartedAt,
		booking.CompletedAt,
		booking.CancelledAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	if hist != nil {
		if err := insertHistoryTx(ctx, tx, hist); err != nil {
			return fmt.Errorf("insert booking history for %s: %w", booking.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// booking_services and booking_status_history cascade via FK
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM booking_services WHERE service_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, serviceID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings for service",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return 0, fmt.Errorf("count bookings for service %s: %w", serviceID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) StreamByCreatedRange(ctx context.Context, from, to time.Time, fn func(*BookingExportRow) error) error {
	query := `
		SELECT b.booking_code, b.customer_name, b.customer_email, b.customer_phone,
		       COALESCE(string_agg(s.title, ', ' ORDER BY s.title), ''),
		       b.service_date, b.service_time, b.status, b.amount, b.created_at
		FROM bookings b
		LEFT JOIN booking_services bs ON bs.booking_id = b.id
		LEFT JOIN services s ON s.id = bs.service_id
		WHERE b.created_at >= $1 AND b.created_at <= $2
		GROUP BY b.id
		ORDER BY b.created_at
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to query bookings for export", zap.Error(err))
		return fmt.Errorf("query bookings for export: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row BookingExportRow
		err := rows.Scan(
			&row.BookingCode,
			&row.CustomerName,
			&row.CustomerEmail,
			&row.CustomerPhone,
			&row.ServiceNames,
			&row.ServiceDate,
			&row.ServiceTime,
			&row.Status,
			&row.Amount,
			&row.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("scan export row: %w", err)
		}
		if err := fn(&row); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count all bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookings by status %s: %w", string(status), err)
	}
	return count, nil
}

func (r *bookingRepository) SumCompletedAmount(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM bookings WHERE status = 'completed'`,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum completed amount: %w", err)
	}
	return sum, nil
}

func (r *bookingRepository) SumCompletedAmountSince(ctx context.Context, since time.Time) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM bookings WHERE status = 'completed' AND created_at >= $1`,
		since,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum completed amount since %s: %w", since.Format("2006-01-02"), err)
	}
	return sum, nil
}

func (r *bookingRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find recent bookings", zap.Error(err))
		return nil, fmt.Errorf("find recent bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}
