package entity

import "time"

type NewsletterSubscriber struct {
	Base
	Email            string     `db:"email"`
	Name             *string    `db:"name"`
	IsActive         bool       `db:"is_active"`
	UnsubscribeToken string     `db:"unsubscribe_token"`
	SubscribedAt     time.Time  `db:"subscribed_at"`
	UnsubscribedAt   *time.Time `db:"unsubscribed_at"`
}
