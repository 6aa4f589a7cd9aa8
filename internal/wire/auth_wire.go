package wire

import (
	"ora-booking/internal/adaptor"
	"ora-booking/internal/data/repository"
	"ora-booking/pkg/middleware"
	"ora-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	// Logout requires a valid session
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Post("/api/auth/logout", authHandler.Logout)
}
