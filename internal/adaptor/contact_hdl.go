package adaptor

import (
	"encoding/json"
	"net/http"

	"ora-booking/internal/dto/request"
	"ora-booking/internal/usecase"
	"ora-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContactHandler struct {
	contact    usecase.ContactService
	newsletter usecase.NewsletterService
	log        *zap.Logger
}

func NewContactHandler(contact usecase.ContactService, newsletter usecase.NewsletterService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contact:    contact,
		newsletter: newsletter,
		log:        log.With(zap.String("handler", "contact")),
	}
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.contact.Submit(r.Context(), remoteIP(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact")
		return
	}

	utils.ResponseCreated(w, "Message sent successfully", message)
}

// Subscribe handles POST /api/newsletter/subscribe
func (h *ContactHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req request.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	subscriber, err := h.newsletter.Subscribe(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "subscribe newsletter")
		return
	}

	utils.ResponseCreated(w, "Subscribed successfully", subscriber)
}

// Unsubscribe handles GET /api/newsletter/unsubscribe/{token}
func (h *ContactHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.newsletter.Unsubscribe(r.Context(), chi.URLParam(r, "token")); err != nil {
		handleServiceError(w, h.log, err, "unsubscribe newsletter")
		return
	}

	utils.ResponseSuccess(w, "Unsubscribed successfully", nil)
}

// ListMessages handles GET /api/admin/contact
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contact.ListMessages(r.Context(), r.URL.Query().Get("status"), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list contact messages")
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved", messages)
}

// GetMessage handles GET /api/admin/contact/{id}
func (h *ContactHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	message, err := h.contact.GetMessage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get contact message")
		return
	}

	utils.ResponseSuccess(w, "Message retrieved", message)
}

// UpdateMessage handles PUT /api/admin/contact/{id}
func (h *ContactHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.contact.UpdateMessage(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update contact message")
		return
	}

	utils.ResponseSuccess(w, "Message updated successfully", message)
}

// DeleteMessage handles DELETE /api/admin/contact/{id}
func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.contact.DeleteMessage(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete contact message")
		return
	}

	utils.ResponseSuccess(w, "Message deleted successfully", nil)
}

// ListSubscribers handles GET /api/admin/newsletter
func (h *ContactHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	subscribers, err := h.newsletter.ListSubscribers(r.Context(), activeOnly, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list subscribers")
		return
	}

	utils.ResponseSuccess(w, "Subscribers retrieved", subscribers)
}
