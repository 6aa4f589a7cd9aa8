package wire

import (
	"ora-booking/internal/adaptor"
	"ora-booking/internal/data/repository"
	"ora-booking/pkg/middleware"
	"ora-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContent(
	r chi.Router,
	contentHandler *adaptor.ContentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/testimonials", contentHandler.ListTestimonials)
	r.Get("/api/team", contentHandler.ListTeamMembers)
	r.Get("/api/faqs", contentHandler.ListFAQs)
	r.Get("/api/portfolios", contentHandler.ListPortfolios)
	r.Get("/api/blog", contentHandler.ListBlogPosts)
	r.Get("/api/blog/{slug}", contentHandler.GetBlogPostBySlug)
	r.Get("/api/settings", contentHandler.GetSettings)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/testimonials", contentHandler.CreateTestimonial)
		r.Put("/testimonials/{id}", contentHandler.UpdateTestimonial)
		r.Delete("/testimonials/{id}", contentHandler.DeleteTestimonial)

		r.Post("/team", contentHandler.CreateTeamMember)
		r.Put("/team/{id}", contentHandler.UpdateTeamMember)
		r.Delete("/team/{id}", contentHandler.DeleteTeamMember)

		r.Post("/faqs", contentHandler.CreateFAQ)
		r.Put("/faqs/{id}", contentHandler.UpdateFAQ)
		r.Delete("/faqs/{id}", contentHandler.DeleteFAQ)

		r.Post("/portfolios", contentHandler.CreatePortfolio)
		r.Put("/portfolios/{id}", contentHandler.UpdatePortfolio)
		r.Delete("/portfolios/{id}", contentHandler.DeletePortfolio)

		r.Post("/blog", contentHandler.CreateBlogPost)
		r.Put("/blog/{id}", contentHandler.UpdateBlogPost)
		r.Delete("/blog/{id}", contentHandler.DeleteBlogPost)

		r.Put("/settings", contentHandler.UpdateSettings)
	})
}
