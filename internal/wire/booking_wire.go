package wire

import (
	"ora-booking/internal/adaptor"
	"ora-booking/internal/data/repository"
	"ora-booking/pkg/middleware"
	"ora-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Create a new booking request
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// POST /api/bookings/status - Look up a booking by code + email
	r.Post("/api/bookings/status", bookingHandler.GetBookingStatus)

	// GET /api/bookings/{code} - Customer-facing booking details
	r.Get("/api/bookings/{code}", bookingHandler.GetBookingByCode)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - Filtered, paginated listing
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/admin/bookings/export - CSV export by created date range
		r.Get("/export", bookingHandler.ExportBookings)

		// GET /api/admin/bookings/{id} - Full booking details with history
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/admin/bookings/{id} - Update details and/or status
		r.Put("/{id}", bookingHandler.UpdateBooking)

		// DELETE /api/admin/bookings/{id} - Remove a booking
		r.Delete("/{id}", bookingHandler.DeleteBooking)

		// POST /api/admin/bookings/{id}/payments - Record a payment
		r.Post("/{id}/payments", bookingHandler.RecordPayment)

		// GET /api/admin/bookings/{id}/payments - List payments for a booking
		r.Get("/{id}/payments", bookingHandler.ListPayments)
	})
}
