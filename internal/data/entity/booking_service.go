package entity

import "github.com/google/uuid"

// BookingService is one line of a booking: a service (optionally a
// specific package of it) with a quantity and the price captured at
// booking time.
type BookingService struct {
	BaseSimple
	BookingID  uuid.UUID  `db:"booking_id"`
	ServiceID  uuid.UUID  `db:"service_id"`
	PackageID  *uuid.UUID `db:"package_id"`
	Quantity   int        `db:"quantity"`
	UnitPrice  float64    `db:"unit_price"`
	TotalPrice float64    `db:"total_price"`
	Notes      *string    `db:"notes"`
}
