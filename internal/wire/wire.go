// internal/wire/wire.go
package wire

import (
	"net/http"

	"ora-booking/internal/adaptor"
	"ora-booking/internal/data/repository"
	"ora-booking/internal/usecase"
	"ora-booking/pkg/captcha"
	"ora-booking/pkg/mailer"
	"ora-booking/pkg/middleware"
	"ora-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mail := mailer.NewSMTPMailer(config.Email, logger)
	verifier := captcha.NewRecaptchaVerifier(config.Captcha)

	// Initialize services and handlers
	service := usecase.NewService(repo, config, mail, verifier, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireCatalog(r, handler.Catalog, repo, config, logger)
	wireContent(r, handler.Content, repo, config, logger)
	wireContact(r, handler.Contact, repo, config, logger)
	wireDashboard(r, handler.Dashboard, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
