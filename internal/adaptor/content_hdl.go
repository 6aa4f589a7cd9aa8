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

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// ==================== Public ====================

// ListTestimonials handles GET /api/testimonials
func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"

	testimonials, err := h.service.ListTestimonials(r.Context(), featuredOnly, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list testimonials")
		return
	}

	utils.ResponseSuccess(w, "Testimonials retrieved", testimonials)
}

// ListTeamMembers handles GET /api/team
func (h *ContentHandler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListTeamMembers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list team members")
		return
	}

	utils.ResponseSuccess(w, "Team members retrieved", members)
}

// ListFAQs handles GET /api/faqs
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListFAQs(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleServiceError(w, h.log, err, "list FAQs")
		return
	}

	utils.ResponseSuccess(w, "FAQs retrieved", faqs)
}

// ListPortfolios handles GET /api/portfolios
func (h *ContentHandler) ListPortfolios(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPortfolios(r.Context(), r.URL.Query().Get("service_id"), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list portfolios")
		return
	}

	utils.ResponseSuccess(w, "Portfolio retrieved", items)
}

// ListBlogPosts handles GET /api/blog
func (h *ContentHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListBlogPosts(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list blog posts")
		return
	}

	utils.ResponseSuccess(w, "Blog posts retrieved", posts)
}

// GetBlogPostBySlug handles GET /api/blog/{slug}
func (h *ContentHandler) GetBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetBlogPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get blog post")
		return
	}

	utils.ResponseSuccess(w, "Blog post retrieved", post)
}

// GetSettings handles GET /api/settings and GET /api/admin/settings
func (h *ContentHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context(), r.URL.Query().Get("group"))
	if err != nil {
		handleServiceError(w, h.log, err, "get settings")
		return
	}

	utils.ResponseSuccess(w, "Settings retrieved", settings)
}

// ==================== Admin ====================

// CreateTestimonial handles POST /api/admin/testimonials
func (h *ContentHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	testimonial, err := h.service.CreateTestimonial(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create testimonial")
		return
	}

	utils.ResponseCreated(w, "Testimonial created successfully", testimonial)
}

// UpdateTestimonial handles PUT /api/admin/testimonials/{id}
func (h *ContentHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	testimonial, err := h.service.UpdateTestimonial(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update testimonial")
		return
	}

	utils.ResponseSuccess(w, "Testimonial updated successfully", testimonial)
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/{id}
func (h *ContentHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTestimonial(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete testimonial")
		return
	}

	utils.ResponseSuccess(w, "Testimonial deleted successfully", nil)
}

// CreateTeamMember handles POST /api/admin/team
func (h *ContentHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	member, err := h.service.CreateTeamMember(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create team member")
		return
	}

	utils.ResponseCreated(w, "Team member created successfully", member)
}

// UpdateTeamMember handles PUT /api/admin/team/{id}
func (h *ContentHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	member, err := h.service.UpdateTeamMember(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update team member")
		return
	}

	utils.ResponseSuccess(w, "Team member updated successfully", member)
}

// DeleteTeamMember handles DELETE /api/admin/team/{id}
func (h *ContentHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTeamMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete team member")
		return
	}

	utils.ResponseSuccess(w, "Team member deleted successfully", nil)
}

// CreateFAQ handles POST /api/admin/faqs
func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	faq, err := h.service.CreateFAQ(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create FAQ")
		return
	}

	utils.ResponseCreated(w, "FAQ created successfully", faq)
}

// UpdateFAQ handles PUT /api/admin/faqs/{id}
func (h *ContentHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	faq, err := h.service.UpdateFAQ(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update FAQ")
		return
	}

	utils.ResponseSuccess(w, "FAQ updated successfully", faq)
}

// DeleteFAQ handles DELETE /api/admin/faqs/{id}
func (h *ContentHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFAQ(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete FAQ")
		return
	}

	utils.ResponseSuccess(w, "FAQ deleted successfully", nil)
}

// CreatePortfolio handles POST /api/admin/portfolios
func (h *ContentHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.CreatePortfolio(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create portfolio item")
		return
	}

	utils.ResponseCreated(w, "Portfolio item created successfully", item)
}

// UpdatePortfolio handles PUT /api/admin/portfolios/{id}
func (h *ContentHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.UpdatePortfolio(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update portfolio item")
		return
	}

	utils.ResponseSuccess(w, "Portfolio item updated successfully", item)
}

// DeletePortfolio handles DELETE /api/admin/portfolios/{id}
func (h *ContentHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePortfolio(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete portfolio item")
		return
	}

	utils.ResponseSuccess(w, "Portfolio item deleted successfully", nil)
}

// CreateBlogPost handles POST /api/admin/blog
func (h *ContentHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	post, err := h.service.CreateBlogPost(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create blog post")
		return
	}

	utils.ResponseCreated(w, "Blog post created successfully", post)
}

// UpdateBlogPost handles PUT /api/admin/blog/{id}
func (h *ContentHandler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	post, err := h.service.UpdateBlogPost(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update blog post")
		return
	}

	utils.ResponseSuccess(w, "Blog post updated successfully", post)
}

// DeleteBlogPost handles DELETE /api/admin/blog/{id}
func (h *ContentHandler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBlogPost(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete blog post")
		return
	}

	utils.ResponseSuccess(w, "Blog post deleted successfully", nil)
}

// UpdateSettings handles PUT /api/admin/settings
func (h *ContentHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateSettings(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "update settings")
		return
	}

	utils.ResponseSuccess(w, "Settings updated successfully", nil)
}
