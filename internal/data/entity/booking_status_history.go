package entity

import "github.com/google/uuid"

// BookingStatusHistory is an append-only record of every status change,
// including the initial pending entry written at creation.
type BookingStatusHistory struct {
	BaseSimple
	BookingID  uuid.UUID     `db:"booking_id"`
	FromStatus BookingStatus `db:"from_status"`
	ToStatus   BookingStatus `db:"to_status"`
	ChangedBy  string        `db:"changed_by"`
	Note       *string       `db:"note"`
}
