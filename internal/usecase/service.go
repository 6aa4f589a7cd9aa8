package usecase

import (
	"ora-booking/internal/data/repository"
	"ora-booking/pkg/captcha"
	"ora-booking/pkg/mailer"
	"ora-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Booking    BookingService
	Catalog    CatalogService
	Content    ContentService
	Contact    ContactService
	Newsletter NewsletterService
	Dashboard  DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, verifier captcha.Verifier, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Booking:    NewBookingService(repo, config, mail, verifier, log),
		Catalog:    NewCatalogService(repo, log),
		Content:    NewContentService(repo, log),
		Contact:    NewContactService(repo, config, mail, verifier, log),
		Newsletter: NewNewsletterService(repo, config, mail, log),
		Dashboard:  NewDashboardService(repo, log),
	}
}
