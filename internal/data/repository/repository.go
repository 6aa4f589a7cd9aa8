package repository

import (
	"ora-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Service     ServiceRepository
	Coupon      CouponRepository
	Booking     BookingRepository
	Payment     PaymentRepository
	Testimonial TestimonialRepository
	TeamMember  TeamRepository
	FAQ         FAQRepository
	Portfolio   PortfolioRepository
	BlogPost    BlogRepository
	Setting     SettingRepository
	Contact     ContactRepository
	Newsletter  NewsletterRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Service:     NewServiceRepository(db, log),
		Coupon:      NewCouponRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Testimonial: NewTestimonialRepository(db, log),
		TeamMember:  NewTeamRepository(db, log),
		FAQ:         NewFAQRepository(db, log),
		Portfolio:   NewPortfolioRepository(db, log),
		BlogPost:    NewBlogRepository(db, log),
		Setting:     NewSettingRepository(db, log),
		Contact:     NewContactRepository(db, log),
		Newsletter:  NewNewsletterRepository(db, log),
	}
}
