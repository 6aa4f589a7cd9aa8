package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// allowedTransitions is the single source of truth for the booking
// lifecycle. Terminal states have no outgoing edges.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
}

func (s BookingStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	Base
	BookingCode     string        `db:"booking_code"`
	UserID          *uuid.UUID    `db:"user_id"`
	CustomerName    string        `db:"customer_name"`
	CustomerEmail   string        `db:"customer_email"`
	CustomerPhone   string        `db:"customer_phone"`
	CustomerAddress string        `db:"customer_address"`
	CustomerCity    string        `db:"customer_city"`
	CustomerState   string        `db:"customer_state"`
	CustomerMessage *string       `db:"customer_message"`
	ServiceDate     time.Time     `db:"service_date"`
	ServiceTime     string        `db:"service_time"` // "15:04"
	Status          BookingStatus `db:"status"`
	Amount          float64       `db:"amount"`
	DiscountAmount  float64       `db:"discount_amount"`
	CouponID        *uuid.UUID    `db:"coupon_id"`
	TechnicianNotes *string       `db:"technician_notes"`
	AdminNotes      *string       `db:"admin_notes"`
	ConfirmedAt     *time.Time    `db:"confirmed_at"`
	StartedAt       *time.Time    `db:"started_at"`
	CompletedAt     *time.Time    `db:"completed_at"`
	CancelledAt     *time.Time    `db:"cancelled_at"`
}

// Transition moves the booking to next, stamping the matching outcome
// timestamp the first time that state is reached. It does not touch
// timestamps that are already set.
func (b *Booking) Transition(next BookingStatus, now time.Time) bool {
	if !b.Status.CanTransitionTo(next) {
		return false
	}

	switch next {
	case BookingStatusConfirmed:
		if b.ConfirmedAt == nil {
			b.ConfirmedAt = &now
		}
	case BookingStatusInProgress:
		if b.StartedAt == nil {
			b.StartedAt = &now
		}
	case BookingStatusCompleted:
		if b.CompletedAt == nil {
			b.CompletedAt = &now
		}
	case BookingStatusCancelled:
		if b.CancelledAt == nil {
			b.CancelledAt = &now
		}
	}

	b.Status = next
	b.UpdatedAt = now
	return true
}
