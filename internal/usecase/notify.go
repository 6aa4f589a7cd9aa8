package usecase

import (
	"context"
	"fmt"
	"strings"

	"ora-booking/internal/data/entity"
	"ora-booking/pkg/utils"

	"go.uber.org/zap"
)

// Notification mail is best-effort: a booking or contact submission never
// fails because SMTP is down. Errors are logged and swallowed.

func (s *bookingService) notifyBookingCreated(ctx context.Context, booking *entity.Booking, lines []resolvedLine) {
	var sb strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&sb, "- %s x%d (%s)\n",
			line.service.Title,
			line.item.Quantity,
			utils.FormatAmount(s.config.App.Currency, line.item.TotalPrice),
		)
	}

	customerBody := fmt.Sprintf(
		"Hi %s,\n\nThank you for your booking. Your booking code is %s.\n\n"+
			"Scheduled for %s at %s.\n\nServices:\n%s\nTotal: %s\n\n"+
			"You can check your booking status anytime at %s using your booking code and email.\n",
		booking.CustomerName,
		booking.BookingCode,
		booking.ServiceDate.Format("2 January 2006"),
		booking.ServiceTime,
		sb.String(),
		utils.FormatAmount(s.config.App.Currency, booking.Amount),
		s.config.App.BaseURL,
	)

	if err := s.mailer.Send(ctx, booking.CustomerEmail,
		fmt.Sprintf("Booking received - %s", booking.BookingCode), customerBody); err != nil {
		s.log.Error("Failed to send booking confirmation",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
		)
	}

	if s.config.App.AdminMail == "" {
		return
	}

	adminBody := fmt.Sprintf(
		"New booking %s\n\nCustomer: %s (%s, %s)\nScheduled: %s %s\n\nServices:\n%s\nTotal: %s\n",
		booking.BookingCode,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.ServiceDate.Format("2006-01-02"),
		booking.ServiceTime,
		sb.String(),
		utils.FormatAmount(s.config.App.Currency, booking.Amount),
	)

	if err := s.mailer.Send(ctx, s.config.App.AdminMail,
		fmt.Sprintf("New booking - %s", booking.BookingCode), adminBody); err != nil {
		s.log.Error("Failed to send booking alert",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
		)
	}
}

var statusLines = map[entity.BookingStatus]string{
	entity.BookingStatusConfirmed:  "Your booking has been confirmed.",
	entity.BookingStatusInProgress: "Work on your booking has started.",
	entity.BookingStatusCompleted:  "Your booking has been completed. Thank you!",
	entity.BookingStatusCancelled:  "Your booking has been cancelled.",
}

func (s *bookingService) notifyStatusChanged(ctx context.Context, booking *entity.Booking, from entity.BookingStatus) {
	line, ok := statusLines[booking.Status]
	if !ok {
		return
	}

	body := fmt.Sprintf(
		"Hi %s,\n\n%s\n\nBooking code: %s\nScheduled: %s at %s\n",
		booking.CustomerName,
		line,
		booking.BookingCode,
		booking.ServiceDate.Format("2 January 2006"),
		booking.ServiceTime,
	)

	if err := s.mailer.Send(ctx, booking.CustomerEmail,
		fmt.Sprintf("Booking %s - %s", booking.Status, booking.BookingCode), body); err != nil {
		s.log.Error("Failed to send status notification",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
			zap.String("status", string(booking.Status)),
		)
	}
}
