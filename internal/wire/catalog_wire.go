package wire

import (
	"ora-booking/internal/adaptor"
	"ora-booking/internal/data/repository"
	"ora-booking/pkg/middleware"
	"ora-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/services - Active services, optionally featured only
	r.Get("/api/services", catalogHandler.ListServices)

	// GET /api/services/{slug} - Service details with packages
	r.Get("/api/services/{slug}", catalogHandler.GetServiceBySlug)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/services", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", catalogHandler.ListAllServices)
		r.Post("/", catalogHandler.CreateService)
		r.Put("/{id}", catalogHandler.UpdateService)
		r.Delete("/{id}", catalogHandler.DeleteService)
	})

	r.Route("/api/admin/coupons", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", catalogHandler.ListCoupons)
		r.Post("/", catalogHandler.CreateCoupon)
		r.Put("/{id}", catalogHandler.UpdateCoupon)
		r.Delete("/{id}", catalogHandler.DeleteCoupon)
	})
}
