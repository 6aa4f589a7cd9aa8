package adaptor

import (
	"errors"
	"net"
	"net/http"

	"ora-booking/internal/usecase"
	"ora-booking/pkg/apperr"
	"ora-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Booking   *BookingHandler
	Catalog   *CatalogHandler
	Content   *ContentHandler
	Contact   *ContactHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Catalog:   NewCatalogHandler(service.Catalog, log),
		Content:   NewContentHandler(service.Content, log),
		Contact:   NewContactHandler(service.Contact, service.Newsletter, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}

// handleServiceError maps the error taxonomy onto HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	var vErr *apperr.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)
	case errors.Is(err, apperr.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, apperr.ErrInvalidTransition), errors.Is(err, apperr.ErrConflict):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid email or password")
	default:
		log.Error("Request failed", zap.String("op", op), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func remoteIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
