package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"ora-booking/internal/data/entity"
	"ora-booking/internal/dto/request"
	"ora-booking/pkg/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedService(d *testDeps, title string, price float64) *entity.Service {
	svc := &entity.Service{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title:    title,
		Slug:     strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Price:    price,
		IsActive: true,
	}
	d.svcs.services[svc.ID] = svc
	return svc
}

func validCreateRequest(svc *entity.Service) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		CustomerName:  "Aina Rahman",
		CustomerEmail: "aina@example.com",
		CustomerPhone: "0123456789",
		ServiceDate:   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		ServiceTime:   "10:00",
		Services: []request.BookingLineRequest{
			{ServiceID: svc.ID.String(), Quantity: 2},
		},
	}
}

func TestCreateBookingDefaults(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	resp, err := d.bookingService().CreateBooking(context.Background(), "1.2.3.4", validCreateRequest(svc))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.BookingCode, "ORA-"), "code %s", resp.BookingCode)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, 160.0, resp.Amount)
	assert.Len(t, resp.Services, 1)
	assert.Equal(t, "Aircond Cleaning", resp.Services[0].ServiceTitle)

	// Customer confirmation plus operator alert.
	assert.Equal(t, 2, d.mailer.count())
	assert.Equal(t, "aina@example.com", d.mailer.sent[0].To)
	assert.Equal(t, "ops@example.com", d.mailer.sent[1].To)
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Plumbing", 120)

	req := validCreateRequest(svc)
	req.ServiceDate = "2020-01-15"

	_, err := d.bookingService().CreateBooking(context.Background(), "", req)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "service_date")
	assert.Equal(t, 0, d.mailer.count())
}

func TestCreateBookingCollectsAllFieldErrors(t *testing.T) {
	d := newTestDeps()

	_, err := d.bookingService().CreateBooking(context.Background(), "", &request.CreateBookingRequest{
		CustomerEmail: "not-an-email",
		ServiceDate:   "nope",
		ServiceTime:   "25:99",
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customer_name")
	assert.Contains(t, verr.Fields, "customer_email")
	assert.Contains(t, verr.Fields, "customer_phone")
	assert.Contains(t, verr.Fields, "service_date")
	assert.Contains(t, verr.Fields, "service_time")
	assert.Contains(t, verr.Fields, "services")
}

func TestCreateBookingRejectsInactiveService(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Wiring", 200)
	svc.IsActive = false

	_, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateBookingRetriesOnCodeCollision(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Painting", 500)
	d.books.createErr = &pgconn.PgError{Code: "23505"}

	resp, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.BookingCode, "ORA-"))
	assert.Len(t, d.books.bookings, 1)
}

func TestCreateBookingPersistenceFailure(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Painting", 500)
	d.books.createErr = errors.New("connection reset")

	_, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))

	var perr *apperr.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 0, d.mailer.count())
}

func TestCreateBookingAppliesCoupon(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Deep Clean", 100)

	coupon := &entity.Coupon{
		Base:          entity.Base{ID: uuid.New()},
		Code:          "SAVE10",
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
	}
	d.coups.coupons[coupon.ID] = coupon

	req := validCreateRequest(svc)
	code := "save10" // lookup is case-insensitive
	req.CouponCode = &code

	resp, err := d.bookingService().CreateBooking(context.Background(), "", req)
	require.NoError(t, err)
	assert.Equal(t, 20.0, resp.DiscountAmount)
	assert.Equal(t, 180.0, resp.Amount)
}

func TestCreateBookingRejectsExhaustedCoupon(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Deep Clean", 100)

	limit := 5
	coupon := &entity.Coupon{
		Base:          entity.Base{ID: uuid.New()},
		Code:          "GONE",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: 10,
		UsageLimit:    &limit,
		UsedCount:     5,
		IsActive:      true,
	}
	d.coups.coupons[coupon.ID] = coupon

	req := validCreateRequest(svc)
	code := "GONE"
	req.CouponCode = &code

	_, err := d.bookingService().CreateBooking(context.Background(), "", req)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "coupon_code")
}

func TestCreateBookingCouponRaceLostIsValidationError(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Deep Clean", 100)

	limit := 1
	coupon := &entity.Coupon{
		Base:          entity.Base{ID: uuid.New()},
		Code:          "LAST1",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: 10,
		UsageLimit:    &limit,
		IsActive:      true,
	}
	d.coups.coupons[coupon.ID] = coupon

	// A concurrent booking takes the last use between validation and the
	// transactional bump.
	d.books.createErr = fmt.Errorf("bump coupon usage: %w", entity.ErrCouponExhausted)

	req := validCreateRequest(svc)
	code := "LAST1"
	req.CouponCode = &code

	_, err := d.bookingService().CreateBooking(context.Background(), "", req)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "coupon_code")
	assert.Empty(t, d.books.bookings)
	assert.Equal(t, 0, d.mailer.count())
}

func TestGetBookingStatusRequiresMatchingEmail(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	created, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)

	status, err := d.bookingService().GetBookingStatus(context.Background(), &request.BookingStatusRequest{
		BookingCode: created.BookingCode,
		Email:       "aina@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, status.Status)
	require.Len(t, status.History, 1)
	assert.Equal(t, "system", status.History[0].ChangedBy)

	// Email match is case-insensitive.
	status, err = d.bookingService().GetBookingStatus(context.Background(), &request.BookingStatusRequest{
		BookingCode: created.BookingCode,
		Email:       "Aina@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, created.BookingCode, status.BookingCode)

	_, err = d.bookingService().GetBookingStatus(context.Background(), &request.BookingStatusRequest{
		BookingCode: created.BookingCode,
		Email:       "someone.else@example.com",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetBookingByCodeHidesInternalNotes(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	created, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)

	notes := "replace compressor"
	b := d.books.bookings[uuid.MustParse(created.ID)]
	b.TechnicianNotes = &notes
	b.AdminNotes = &notes

	resp, err := d.bookingService().GetBookingByCode(context.Background(), created.BookingCode)
	require.NoError(t, err)
	assert.Nil(t, resp.TechnicianNotes)
	assert.Nil(t, resp.AdminNotes)
}

func TestUpdateBookingStatusChange(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	created, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)
	mailsAfterCreate := d.mailer.count()

	status := "confirmed"
	resp, err := d.bookingService().UpdateBooking(context.Background(), created.ID, "admin@example.com", &request.UpdateBookingRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	require.NotNil(t, resp.ConfirmedAt)

	// One customer notification on the change.
	assert.Equal(t, mailsAfterCreate+1, d.mailer.count())

	history, err := d.books.FindHistory(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.BookingStatusPending, history[1].FromStatus)
	assert.Equal(t, entity.BookingStatusConfirmed, history[1].ToStatus)
	assert.Equal(t, "admin@example.com", history[1].ChangedBy)
}

func TestUpdateBookingSameStatusIsIdempotent(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	created, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)
	mailsAfterCreate := d.mailer.count()

	status := "pending"
	_, err = d.bookingService().UpdateBooking(context.Background(), created.ID, "admin@example.com", &request.UpdateBookingRequest{
		Status: &status,
	})
	require.NoError(t, err)

	// No mail, no history row.
	assert.Equal(t, mailsAfterCreate, d.mailer.count())
	history, _ := d.books.FindHistory(context.Background(), uuid.MustParse(created.ID))
	assert.Len(t, history, 1)
}

func TestUpdateBookingRejectsInvalidTransition(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	created, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)

	status := "completed"
	_, err = d.bookingService().UpdateBooking(context.Background(), created.ID, "admin@example.com", &request.UpdateBookingRequest{
		Status: &status,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
}

func TestUpdateBookingKeepsFirstConfirmedAt(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	created, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)

	stamped := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	b := d.books.bookings[uuid.MustParse(created.ID)]
	b.Status = entity.BookingStatusInProgress
	b.ConfirmedAt = &stamped

	status := "completed"
	resp, err := d.bookingService().UpdateBooking(context.Background(), created.ID, "admin@example.com", &request.UpdateBookingRequest{
		Status: &status,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ConfirmedAt)
	assert.Equal(t, stamped, *resp.ConfirmedAt)
	require.NotNil(t, resp.CompletedAt)
}

func TestDeleteBookingNotFound(t *testing.T) {
	d := newTestDeps()

	err := d.bookingService().DeleteBooking(context.Background(), uuid.NewString(), "admin@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestExportBookingsCSV(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	created, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = d.bookingService().ExportBookings(context.Background(), &request.ExportBookingsRequest{
		StartDate: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		EndDate:   time.Now().Format("2006-01-02"),
	}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Booking Code,Customer Name,Email,Phone,Services,Service Date,Service Time,Status,Amount,Created At", lines[0])
	assert.Contains(t, lines[1], created.BookingCode)
	assert.Contains(t, lines[1], "RM 160.00")
}

func TestExportBookingsRejectsInvertedRange(t *testing.T) {
	d := newTestDeps()

	var buf bytes.Buffer
	err := d.bookingService().ExportBookings(context.Background(), &request.ExportBookingsRequest{
		StartDate: "2026-02-01",
		EndDate:   "2026-01-01",
	}, &buf)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, buf.Len(), "nothing should be written on validation failure")
}

func TestRecordPaymentStampsPaidAt(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Aircond Cleaning", 80)

	created, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)

	resp, err := d.bookingService().RecordPayment(context.Background(), created.ID, &request.RecordPaymentRequest{
		Method:     "cash",
		Amount:     160,
		PaidAmount: 160,
		Status:     "paid",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.PaymentNo, "PAY-"))
	assert.NotNil(t, resp.PaidAt)

	payments, err := d.bookingService().ListPayments(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}
