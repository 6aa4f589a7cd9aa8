package wire

import (
	"ora-booking/internal/adaptor"
	"ora-booking/internal/data/repository"
	"ora-booking/pkg/middleware"
	"ora-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/contact - Submit a contact form message
	r.Post("/api/contact", contactHandler.SubmitContact)

	// POST /api/newsletter/subscribe - Join the mailing list
	r.Post("/api/newsletter/subscribe", contactHandler.Subscribe)

	// GET /api/newsletter/unsubscribe/{token} - One-click unsubscribe link
	r.Get("/api/newsletter/unsubscribe/{token}", contactHandler.Unsubscribe)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/contact", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", contactHandler.ListMessages)
		r.Get("/{id}", contactHandler.GetMessage)
		r.Put("/{id}", contactHandler.UpdateMessage)
		r.Delete("/{id}", contactHandler.DeleteMessage)
	})

	r.With(
		middleware.AuthSession(repo.Session, repo.User, log),
		middleware.Admin(log),
	).Get("/api/admin/newsletter", contactHandler.ListSubscribers)
}
