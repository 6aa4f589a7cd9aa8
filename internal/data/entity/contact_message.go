package entity

import "time"

type ContactStatus string

const (
	ContactStatusUnread  ContactStatus = "unread"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
	ContactStatusSpam    ContactStatus = "spam"
)

type ContactMessage struct {
	Base
	Name       string        `db:"name"`
	Email      string        `db:"email"`
	Phone      *string       `db:"phone"`
	Subject    string        `db:"subject"`
	Message    string        `db:"message"`
	Status     ContactStatus `db:"status"`
	AdminNotes *string       `db:"admin_notes"`
	RepliedAt  *time.Time    `db:"replied_at"`
}
