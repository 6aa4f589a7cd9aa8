package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"ora-booking/internal/data/entity"
	"ora-booking/internal/data/repository"
	"ora-booking/internal/dto/request"
	"ora-booking/internal/dto/response"
	"ora-booking/pkg/apperr"
	"ora-booking/pkg/captcha"
	"ora-booking/pkg/mailer"
	"ora-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public
	CreateBooking(ctx context.Context, remoteIP string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingStatus(ctx context.Context, req *request.BookingStatusRequest) (*response.BookingStatusResponse, error)
	GetBookingByCode(ctx context.Context, code string) (*response.BookingResponse, error)

	// Admin
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBooking(ctx context.Context, bookingID, actor string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID, actor string) error
	ExportBookings(ctx context.Context, req *request.ExportBookingsRequest, w io.Writer) error

	// Payments
	RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)
	ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	config   *utils.Config
	mailer   mailer.Mailer
	verifier captcha.Verifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, verifier captcha.Verifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		config:   config,
		mailer:   mail,
		verifier: verifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

// resolvedLine pairs a priced line item with the service it references,
// so notifications can name what was booked.
type resolvedLine struct {
	item    *entity.BookingService
	service *entity.Service
}

func (s *bookingService) CreateBooking(ctx context.Context, remoteIP string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = map[string]string{}
	}

	now := time.Now()

	var serviceDate time.Time
	if _, ok := errs["service_date"]; !ok {
		parsed, err := utils.ParseDate(req.ServiceDate)
		if err != nil {
			errs["service_date"] = "service_date must be a valid date (YYYY-MM-DD)"
		} else if !parsed.After(now.Truncate(24 * time.Hour)) {
			errs["service_date"] = "service_date must be a future date"
		} else {
			serviceDate = parsed
		}
	}

	if req.ServiceTime != "" && !utils.ValidTimeOfDay(req.ServiceTime) {
		errs["service_time"] = "service_time must be in HH:MM format"
	}

	if len(errs) > 0 {
		s.log.Warn("Create booking validation failed",
			zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, apperr.NewValidation(errs)
	}

	if s.verifier != nil {
		if err := s.verifier.Verify(ctx, req.CaptchaToken, remoteIP); err != nil {
			s.log.Warn("Captcha rejected", zap.Error(err))
			return nil, apperr.Validation("captcha_token", "captcha verification failed")
		}
	}

	lines, subtotal, err := s.resolveLines(ctx, req.Services)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingCode:     utils.GenerateBookingCode(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: derefString(req.CustomerAddress),
		CustomerCity:    derefString(req.CustomerCity),
		CustomerState:   derefString(req.CustomerState),
		CustomerMessage: req.CustomerMessage,
		ServiceDate:     serviceDate,
		ServiceTime:     req.ServiceTime,
		Status:          entity.BookingStatusPending,
		Amount:          subtotal,
	}

	if req.CouponCode != nil && *req.CouponCode != "" {
		coupon, err := s.repo.Coupon.FindByCode(ctx, *req.CouponCode)
		if err != nil {
			return nil, apperr.Persistence("lookup coupon", err)
		}
		if coupon == nil {
			return nil, apperr.Validation("coupon_code", "coupon not found")
		}
		if err := coupon.ValidateUsage(now, subtotal); err != nil {
			return nil, apperr.Validation("coupon_code", err.Error())
		}
		booking.DiscountAmount = coupon.DiscountFor(subtotal)
		booking.Amount = subtotal - booking.DiscountAmount
		booking.CouponID = &coupon.ID
	}

	items := make([]*entity.BookingService, 0, len(lines))
	for _, line := range lines {
		line.item.BookingID = booking.ID
		items = append(items, line.item)
	}

	err = s.repo.Booking.CreateWithServices(ctx, booking, items)
	if apperr.IsUniqueViolation(err) {
		// Code collision: retry once with a fresh code.
		booking.BookingCode = utils.GenerateBookingCode()
		err = s.repo.Booking.CreateWithServices(ctx, booking, items)
	}
	if errors.Is(err, entity.ErrCouponExhausted) {
		// Lost the race for the coupon's last use.
		return nil, apperr.Validation("coupon_code", entity.ErrCouponExhausted.Error())
	}
	if err != nil {
		return nil, apperr.Persistence("create booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_code", booking.BookingCode),
		zap.String("customer_email", booking.CustomerEmail),
		zap.Float64("amount", booking.Amount),
	)

	s.notifyBookingCreated(ctx, booking, lines)

	return s.toResponse(ctx, booking)
}

// resolveLines prices every requested line against the current catalog.
// Any invalid reference fails the whole request.
func (s *bookingService) resolveLines(ctx context.Context, reqs []request.BookingLineRequest) ([]resolvedLine, float64, error) {
	lines := make([]resolvedLine, 0, len(reqs))
	var subtotal float64

	for i, lr := range reqs {
		field := fmt.Sprintf("services[%d]", i)

		serviceID, err := uuid.Parse(lr.ServiceID)
		if err != nil {
			return nil, 0, apperr.Validation(field+".service_id", "invalid service id")
		}

		service, err := s.repo.Service.FindByID(ctx, serviceID)
		if err != nil {
			return nil, 0, apperr.Persistence("lookup service", err)
		}
		if service == nil || !service.IsActive {
			return nil, 0, apperr.Validation(field+".service_id", "service not found or inactive")
		}

		unitPrice := service.Price
		var packageID *uuid.UUID
		if lr.PackageID != nil && *lr.PackageID != "" {
			pkgID, err := uuid.Parse(*lr.PackageID)
			if err != nil {
				return nil, 0, apperr.Validation(field+".package_id", "invalid package id")
			}
			pkg, err := s.repo.Service.FindPackageByID(ctx, pkgID)
			if err != nil {
				return nil, 0, apperr.Persistence("lookup package", err)
			}
			if pkg == nil || !pkg.IsActive || pkg.ServiceID != service.ID {
				return nil, 0, apperr.Validation(field+".package_id", "package not found for service")
			}
			unitPrice = pkg.Price
			packageID = &pkg.ID
		}

		total := float64(lr.Quantity) * unitPrice
		subtotal += total

		lines = append(lines, resolvedLine{
			item: &entity.BookingService{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: time.Now(),
				},
				ServiceID:  service.ID,
				PackageID:  packageID,
				Quantity:   lr.Quantity,
				UnitPrice:  unitPrice,
				TotalPrice: total,
				Notes:      lr.Notes,
			},
			service: service,
		})
	}

	return lines, subtotal, nil
}

func (s *bookingService) GetBookingStatus(ctx context.Context, req *request.BookingStatusRequest) (*response.BookingStatusResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	booking, err := s.repo.Booking.FindByCodeAndEmail(ctx, req.BookingCode, req.Email)
	if err != nil {
		return nil, apperr.Persistence("lookup booking", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", apperr.ErrNotFound, req.BookingCode)
	}

	history, err := s.repo.Booking.FindHistory(ctx, booking.ID)
	if err != nil {
		return nil, apperr.Persistence("load booking history", err)
	}

	return &response.BookingStatusResponse{
		BookingCode: booking.BookingCode,
		Status:      booking.Status,
		ServiceDate: booking.ServiceDate.Format("2006-01-02"),
		ServiceTime: booking.ServiceTime,
		Amount:      booking.Amount,
		History:     response.HistoryToResponse(history),
	}, nil
}

func (s *bookingService) GetBookingByCode(ctx context.Context, code string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByCode(ctx, code)
	if err != nil {
		return nil, apperr.Persistence("lookup booking", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", apperr.ErrNotFound, code)
	}

	resp, err := s.toResponse(ctx, booking)
	if err != nil {
		return nil, err
	}

	// Confirmation view: internal notes stay internal.
	resp.TechnicianNotes = nil
	resp.AdminNotes = nil
	return resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findByIDString(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, booking)
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	filter := repository.BookingFilter{}
	if req.Status != "" {
		status := entity.BookingStatus(req.Status)
		filter.Status = &status
	}
	if req.Search != "" {
		filter.Search = &req.Search
	}
	if req.DateFrom != "" {
		from, err := utils.ParseDate(req.DateFrom)
		if err != nil {
			return nil, apperr.Validation("date_from", "must be a valid date (YYYY-MM-DD)")
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := utils.ParseDate(req.DateTo)
		if err != nil {
			return nil, apperr.Validation("date_to", "must be a valid date (YYYY-MM-DD)")
		}
		filter.DateTo = &to
	}

	bookings, err := s.repo.Booking.FindFiltered(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperr.Persistence("list bookings", err)
	}

	total, err := s.repo.Booking.CountFiltered(ctx, filter)
	if err != nil {
		return nil, apperr.Persistence("count bookings", err)
	}

	responses := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, response.BookingToResponse(b, nil))
	}

	return response.NewPaginatedResponse(responses, req.PageOrDefault(), req.Limit(), total), nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID, actor string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}
	if req.ServiceTime != nil && !utils.ValidTimeOfDay(*req.ServiceTime) {
		return nil, apperr.Validation("service_time", "service_time must be in HH:MM format")
	}

	booking, err := s.findByIDString(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if req.ServiceDate != nil {
		date, err := utils.ParseDate(*req.ServiceDate)
		if err != nil {
			return nil, apperr.Validation("service_date", "must be a valid date (YYYY-MM-DD)")
		}
		booking.ServiceDate = date
	}
	if req.ServiceTime != nil {
		booking.ServiceTime = *req.ServiceTime
	}
	if req.Amount != nil {
		booking.Amount = *req.Amount
	}
	if req.TechnicianNotes != nil {
		booking.TechnicianNotes = req.TechnicianNotes
	}
	if req.AdminNotes != nil {
		booking.AdminNotes = req.AdminNotes
	}

	statusChanged := false
	prevStatus := booking.Status
	if req.Status != nil {
		next := entity.BookingStatus(*req.Status)
		if next != booking.Status {
			if !booking.Transition(next, now) {
				return nil, fmt.Errorf("%w: %s -> %s", apperr.ErrInvalidTransition, prevStatus, next)
			}
			statusChanged = true
		}
	}

	booking.UpdatedAt = now

	if statusChanged {
		hist := &entity.BookingStatusHistory{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:  booking.ID,
			FromStatus: prevStatus,
			ToStatus:   booking.Status,
			ChangedBy:  actor,
		}
		if err := s.repo.Booking.UpdateWithHistory(ctx, booking, hist); err != nil {
			return nil, apperr.Persistence("update booking", err)
		}

		s.log.Info("Booking status changed",
			zap.String("booking_code", booking.BookingCode),
			zap.String("from", string(prevStatus)),
			zap.String("to", string(booking.Status)),
			zap.String("actor", actor),
		)

		s.notifyStatusChanged(ctx, booking, prevStatus)
	} else {
		if err := s.repo.Booking.Update(ctx, booking); err != nil {
			return nil, apperr.Persistence("update booking", err)
		}
	}

	return s.toResponse(ctx, booking)
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID, actor string) error {
	booking, err := s.findByIDString(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		return apperr.Persistence("delete booking", err)
	}

	s.log.Info("Booking deleted",
		zap.String("booking_code", booking.BookingCode),
		zap.String("actor", actor),
	)
	return nil
}

// exportHeader is the fixed column set of the CSV export.
var exportHeader = []string{
	"Booking Code", "Customer Name", "Email", "Phone", "Services",
	"Service Date", "Service Time", "Status", "Amount", "Created At",
}

func (s *bookingService) ExportBookings(ctx context.Context, req *request.ExportBookingsRequest, w io.Writer) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation(errs)
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return apperr.Validation("start_date", "must be a valid date (YYYY-MM-DD)")
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return apperr.Validation("end_date", "must be a valid date (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return apperr.Validation("end_date", "end_date must not be before start_date")
	}

	// Inclusive end of day.
	end = end.Add(24*time.Hour - time.Nanosecond)

	// BOM so spreadsheet tools detect UTF-8.
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write export BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	err = s.repo.Booking.StreamByCreatedRange(ctx, start, end, func(row *repository.BookingExportRow) error {
		return cw.Write([]string{
			row.BookingCode,
			row.CustomerName,
			row.CustomerEmail,
			row.CustomerPhone,
			row.ServiceNames,
			row.ServiceDate.Format("2006-01-02"),
			row.ServiceTime,
			string(row.Status),
			utils.FormatAmount(s.config.App.Currency, row.Amount),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	})
	if err != nil {
		return apperr.Persistence("export bookings", err)
	}

	cw.Flush()
	return cw.Error()
}

func (s *bookingService) RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	booking, err := s.findByIDString(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:  booking.ID,
		PaymentNo:  utils.GeneratePaymentNo(),
		Method:     req.Method,
		Amount:     req.Amount,
		PaidAmount: req.PaidAmount,
		Status:     entity.PaymentStatus(req.Status),
		Details:    req.Details,
	}
	if payment.Status == entity.PaymentStatusPaid {
		payment.PaidAt = &now
	}

	err = s.repo.Payment.Create(ctx, payment)
	if apperr.IsUniqueViolation(err) {
		payment.PaymentNo = utils.GeneratePaymentNo()
		err = s.repo.Payment.Create(ctx, payment)
	}
	if err != nil {
		return nil, apperr.Persistence("record payment", err)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *bookingService) ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	booking, err := s.findByIDString(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, apperr.Persistence("list payments", err)
	}

	responses := make([]response.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, response.PaymentToResponse(p))
	}
	return responses, nil
}

func (s *bookingService) findByIDString(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id %s", apperr.ErrNotFound, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("lookup booking", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", apperr.ErrNotFound, bookingID)
	}
	return booking, nil
}

func (s *bookingService) toResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	items, err := s.repo.Booking.FindServices(ctx, booking.ID)
	if err != nil {
		return nil, apperr.Persistence("load booking services", err)
	}

	lines := make([]response.BookingLineResponse, 0, len(items))
	for _, item := range items {
		title := ""
		if svc, err := s.repo.Service.FindByID(ctx, item.ServiceID); err == nil && svc != nil {
			title = svc.Title
		}
		lines = append(lines, response.BookingLineToResponse(item, title))
	}

	resp := response.BookingToResponse(booking, lines)
	return &resp, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
