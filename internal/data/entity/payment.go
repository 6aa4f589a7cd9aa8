package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	Base
	BookingID  uuid.UUID     `db:"booking_id"`
	PaymentNo  string        `db:"payment_no"`
	Method     string        `db:"payment_method"` // cash, transfer, card
	Amount     float64       `db:"amount"`
	PaidAmount float64       `db:"paid_amount"`
	Status     PaymentStatus `db:"status"`
	Details    *string       `db:"payment_details"`
	PaidAt     *time.Time    `db:"paid_at"`
}
