package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ora-booking/internal/dto/request"
	"ora-booking/internal/usecase"
	"ora-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), remoteIP(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// GetBookingStatus handles POST /api/bookings/status
func (h *BookingHandler) GetBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req request.BookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	status, err := h.service.GetBookingStatus(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status retrieved", status)
}

// GetBookingByCode handles GET /api/bookings/{code}
func (h *BookingHandler) GetBookingByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Booking code is required", nil)
		return
	}

	booking, err := h.service.GetBookingByCode(r.Context(), code)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by code")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", booking)
}

// ListBookings handles GET /api/admin/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Status:   query.Get("status"),
		Search:   query.Get("search"),
		DateFrom: query.Get("date_from"),
		DateTo:   query.Get("date_to"),
	}

	bookings, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", bookings)
}

// GetBooking handles GET /api/admin/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", booking)
}

// UpdateBooking handles PUT /api/admin/bookings/{id}
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())

	booking, err := h.service.UpdateBooking(r.Context(), chi.URLParam(r, "id"), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated successfully", booking)
}

// DeleteBooking handles DELETE /api/admin/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActorFromContext(r.Context())

	if err := h.service.DeleteBooking(r.Context(), chi.URLParam(r, "id"), actor); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted successfully", nil)
}

// ExportBookings handles GET /api/admin/bookings/export
func (h *BookingHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ExportBookingsRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	filename := fmt.Sprintf("bookings_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	tracker := &trackingWriter{w: w}
	if err := h.service.ExportBookings(r.Context(), req, tracker); err != nil {
		// The service validates before writing anything, so if no bytes
		// went out the error can still be answered as JSON.
		if !tracker.started {
			w.Header().Del("Content-Disposition")
			handleServiceError(w, h.log, err, "export bookings")
			return
		}
		h.log.Error("Export failed mid-stream", zap.Error(err))
		return
	}
}

type trackingWriter struct {
	w       http.ResponseWriter
	started bool
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	t.started = true
	return t.w.Write(p)
}

// RecordPayment handles POST /api/admin/bookings/{id}/payments
func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "Payment recorded successfully", payment)
}

// ListPayments handles GET /api/admin/bookings/{id}/payments
func (h *BookingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved", payments)
}
