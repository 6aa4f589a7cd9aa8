package usecase

import (
	"context"
	"fmt"
	"time"

	"ora-booking/internal/data/entity"
	"ora-booking/internal/data/repository"
	"ora-booking/internal/dto/request"
	"ora-booking/internal/dto/response"
	"ora-booking/pkg/apperr"
	"ora-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

type ContentService interface {
	// Public
	ListTestimonials(ctx context.Context, featuredOnly bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TestimonialResponse], error)
	ListTeamMembers(ctx context.Context) ([]response.TeamMemberResponse, error)
	ListFAQs(ctx context.Context, category string) ([]response.FAQResponse, error)
	ListPortfolios(ctx context.Context, serviceID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.PortfolioResponse], error)
	ListBlogPosts(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BlogPostResponse], error)
	GetBlogPostBySlug(ctx context.Context, postSlug string) (*response.BlogPostResponse, error)
	GetSettings(ctx context.Context, group string) ([]response.SettingResponse, error)

	// Admin
	CreateTestimonial(ctx context.Context, req *request.CreateTestimonialRequest) (*response.TestimonialResponse, error)
	UpdateTestimonial(ctx context.Context, id string, req *request.UpdateTestimonialRequest) (*response.TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, id string) error

	CreateTeamMember(ctx context.Context, req *request.CreateTeamMemberRequest) (*response.TeamMemberResponse, error)
	UpdateTeamMember(ctx context.Context, id string, req *request.UpdateTeamMemberRequest) (*response.TeamMemberResponse, error)
	DeleteTeamMember(ctx context.Context, id string) error

	CreateFAQ(ctx context.Context, req *request.CreateFAQRequest) (*response.FAQResponse, error)
	UpdateFAQ(ctx context.Context, id string, req *request.UpdateFAQRequest) (*response.FAQResponse, error)
	DeleteFAQ(ctx context.Context, id string) error

	CreatePortfolio(ctx context.Context, req *request.CreatePortfolioRequest) (*response.PortfolioResponse, error)
	UpdatePortfolio(ctx context.Context, id string, req *request.UpdatePortfolioRequest) (*response.PortfolioResponse, error)
	DeletePortfolio(ctx context.Context, id string) error

	CreateBlogPost(ctx context.Context, req *request.CreateBlogPostRequest) (*response.BlogPostResponse, error)
	UpdateBlogPost(ctx context.Context, id string, req *request.UpdateBlogPostRequest) (*response.BlogPostResponse, error)
	DeleteBlogPost(ctx context.Context, id string) error

	UpdateSettings(ctx context.Context, req *request.UpdateSettingsRequest) error
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
	}
}

func (s *contentService) ListTestimonials(ctx context.Context, featuredOnly bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TestimonialResponse], error) {
	testimonials, err := s.repo.Testimonial.FindApproved(ctx, featuredOnly, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Persistence("list testimonials", err)
	}

	total, err := s.repo.Testimonial.CountAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("count testimonials", err)
	}

	responses := make([]response.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		responses = append(responses, response.TestimonialToResponse(t))
	}

	return response.NewPaginatedResponse(responses, page.PageOrDefault(), page.Limit(), total), nil
}

func (s *contentService) ListTeamMembers(ctx context.Context) ([]response.TeamMemberResponse, error) {
	members, err := s.repo.TeamMember.FindActive(ctx)
	if err != nil {
		return nil, apperr.Persistence("list team members", err)
	}

	responses := make([]response.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, response.TeamMemberToResponse(m))
	}
	return responses, nil
}

func (s *contentService) ListFAQs(ctx context.Context, category string) ([]response.FAQResponse, error) {
	faqs, err := s.repo.FAQ.FindActive(ctx, category)
	if err != nil {
		return nil, apperr.Persistence("list FAQs", err)
	}

	responses := make([]response.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		responses = append(responses, response.FAQToResponse(f))
	}
	return responses, nil
}

func (s *contentService) ListPortfolios(ctx context.Context, serviceID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.PortfolioResponse], error) {
	var filter *uuid.UUID
	if serviceID != "" {
		id, err := uuid.Parse(serviceID)
		if err != nil {
			return nil, apperr.Validation("service_id", "invalid service id")
		}
		filter = &id
	}

	items, err := s.repo.Portfolio.FindActive(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Persistence("list portfolio items", err)
	}

	total, err := s.repo.Portfolio.CountAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("count portfolio items", err)
	}

	responses := make([]response.PortfolioResponse, 0, len(items))
	for _, p := range items {
		responses = append(responses, response.PortfolioToResponse(p))
	}

	return response.NewPaginatedResponse(responses, page.PageOrDefault(), page.Limit(), total), nil
}

func (s *contentService) ListBlogPosts(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BlogPostResponse], error) {
	posts, err := s.repo.BlogPost.FindPublished(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Persistence("list blog posts", err)
	}

	total, err := s.repo.BlogPost.CountPublished(ctx)
	if err != nil {
		return nil, apperr.Persistence("count blog posts", err)
	}

	responses := make([]response.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, response.BlogPostToResponse(p, false))
	}

	return response.NewPaginatedResponse(responses, page.PageOrDefault(), page.Limit(), total), nil
}

func (s *contentService) GetBlogPostBySlug(ctx context.Context, postSlug string) (*response.BlogPostResponse, error) {
	post, err := s.repo.BlogPost.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, apperr.Persistence("lookup blog post", err)
	}
	if post == nil || !post.IsPublished {
		return nil, fmt.Errorf("%w: blog post %s", apperr.ErrNotFound, postSlug)
	}

	resp := response.BlogPostToResponse(post, true)
	return &resp, nil
}

func (s *contentService) GetSettings(ctx context.Context, group string) ([]response.SettingResponse, error) {
	var (
		settings []*entity.Setting
		err      error
	)
	if group != "" {
		settings, err = s.repo.Setting.FindByGroup(ctx, group)
	} else {
		settings, err = s.repo.Setting.FindAll(ctx)
	}
	if err != nil {
		return nil, apperr.Persistence("load settings", err)
	}

	responses := make([]response.SettingResponse, 0, len(settings))
	for _, st := range settings {
		responses = append(responses, response.SettingToResponse(st))
	}
	return responses, nil
}

func (s *contentService) CreateTestimonial(ctx context.Context, req *request.CreateTestimonialRequest) (*response.TestimonialResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	serviceID, err := parseOptionalUUID(req.ServiceID, "service_id")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	testimonial := &entity.Testimonial{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CustomerName: req.CustomerName,
		ServiceID:    serviceID,
		Content:      req.Content,
		Rating:       req.Rating,
		IsApproved:   req.IsApproved,
		IsFeatured:   req.IsFeatured,
		IsActive:     true,
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := s.repo.Testimonial.Create(ctx, testimonial); err != nil {
		return nil, apperr.Persistence("create testimonial", err)
	}

	resp := response.TestimonialToResponse(testimonial)
	return &resp, nil
}

func (s *contentService) UpdateTestimonial(ctx context.Context, id string, req *request.UpdateTestimonialRequest) (*response.TestimonialResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	testimonialID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid testimonial id %s", apperr.ErrNotFound, id)
	}

	testimonial, err := s.repo.Testimonial.FindByID(ctx, testimonialID)
	if err != nil {
		return nil, apperr.Persistence("lookup testimonial", err)
	}
	if testimonial == nil {
		return nil, fmt.Errorf("%w: testimonial %s", apperr.ErrNotFound, id)
	}

	if req.CustomerName != nil {
		testimonial.CustomerName = *req.CustomerName
	}
	if req.ServiceID != nil {
		serviceID, err := parseOptionalUUID(req.ServiceID, "service_id")
		if err != nil {
			return nil, err
		}
		testimonial.ServiceID = serviceID
	}
	if req.Content != nil {
		testimonial.Content = *req.Content
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.IsApproved != nil {
		testimonial.IsApproved = *req.IsApproved
	}
	if req.IsFeatured != nil {
		testimonial.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	testimonial.UpdatedAt = time.Now()

	if err := s.repo.Testimonial.Update(ctx, testimonial); err != nil {
		return nil, apperr.Persistence("update testimonial", err)
	}

	resp := response.TestimonialToResponse(testimonial)
	return &resp, nil
}

func (s *contentService) DeleteTestimonial(ctx context.Context, id string) error {
	testimonialID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid testimonial id %s", apperr.ErrNotFound, id)
	}
	if err := s.repo.Testimonial.Delete(ctx, testimonialID); err != nil {
		return apperr.Persistence("delete testimonial", err)
	}
	return nil
}

func (s *contentService) CreateTeamMember(ctx context.Context, req *request.CreateTeamMemberRequest) (*response.TeamMemberResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	now := time.Now()
	member := &entity.TeamMember{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:      req.Name,
		Position:  req.Position,
		Bio:       req.Bio,
		Photo:     req.Photo,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.repo.TeamMember.Create(ctx, member); err != nil {
		return nil, apperr.Persistence("create team member", err)
	}

	resp := response.TeamMemberToResponse(member)
	return &resp, nil
}

func (s *contentService) UpdateTeamMember(ctx context.Context, id string, req *request.UpdateTeamMemberRequest) (*response.TeamMemberResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	memberID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid team member id %s", apperr.ErrNotFound, id)
	}

	member, err := s.repo.TeamMember.FindByID(ctx, memberID)
	if err != nil {
		return nil, apperr.Persistence("lookup team member", err)
	}
	if member == nil {
		return nil, fmt.Errorf("%w: team member %s", apperr.ErrNotFound, id)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.Bio != nil {
		member.Bio = req.Bio
	}
	if req.Photo != nil {
		member.Photo = req.Photo
	}
	if req.SortOrder != nil {
		member.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	member.UpdatedAt = time.Now()

	if err := s.repo.TeamMember.Update(ctx, member); err != nil {
		return nil, apperr.Persistence("update team member", err)
	}

	resp := response.TeamMemberToResponse(member)
	return &resp, nil
}

func (s *contentService) DeleteTeamMember(ctx context.Context, id string) error {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid team member id %s", apperr.ErrNotFound, id)
	}
	if err := s.repo.TeamMember.Delete(ctx, memberID); err != nil {
		return apperr.Persistence("delete team member", err)
	}
	return nil
}

func (s *contentService) CreateFAQ(ctx context.Context, req *request.CreateFAQRequest) (*response.FAQResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	now := time.Now()
	faq := &entity.FAQ{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := s.repo.FAQ.Create(ctx, faq); err != nil {
		return nil, apperr.Persistence("create FAQ", err)
	}

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *contentService) UpdateFAQ(ctx context.Context, id string, req *request.UpdateFAQRequest) (*response.FAQResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	faqID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid FAQ id %s", apperr.ErrNotFound, id)
	}

	faq, err := s.repo.FAQ.FindByID(ctx, faqID)
	if err != nil {
		return nil, apperr.Persistence("lookup FAQ", err)
	}
	if faq == nil {
		return nil, fmt.Errorf("%w: FAQ %s", apperr.ErrNotFound, id)
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.Category != nil {
		faq.Category = req.Category
	}
	if req.SortOrder != nil {
		faq.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}
	faq.UpdatedAt = time.Now()

	if err := s.repo.FAQ.Update(ctx, faq); err != nil {
		return nil, apperr.Persistence("update FAQ", err)
	}

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *contentService) DeleteFAQ(ctx context.Context, id string) error {
	faqID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid FAQ id %s", apperr.ErrNotFound, id)
	}
	if err := s.repo.FAQ.Delete(ctx, faqID); err != nil {
		return apperr.Persistence("delete FAQ", err)
	}
	return nil
}

func (s *contentService) CreatePortfolio(ctx context.Context, req *request.CreatePortfolioRequest) (*response.PortfolioResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	serviceID, err := parseOptionalUUID(req.ServiceID, "service_id")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.Portfolio{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		ServiceID:   serviceID,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.repo.Portfolio.Create(ctx, item); err != nil {
		return nil, apperr.Persistence("create portfolio item", err)
	}

	resp := response.PortfolioToResponse(item)
	return &resp, nil
}

func (s *contentService) UpdatePortfolio(ctx context.Context, id string, req *request.UpdatePortfolioRequest) (*response.PortfolioResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid portfolio id %s", apperr.ErrNotFound, id)
	}

	item, err := s.repo.Portfolio.FindByID(ctx, itemID)
	if err != nil {
		return nil, apperr.Persistence("lookup portfolio item", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: portfolio item %s", apperr.ErrNotFound, id)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Image != nil {
		item.Image = req.Image
	}
	if req.ServiceID != nil {
		serviceID, err := parseOptionalUUID(req.ServiceID, "service_id")
		if err != nil {
			return nil, err
		}
		item.ServiceID = serviceID
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.Portfolio.Update(ctx, item); err != nil {
		return nil, apperr.Persistence("update portfolio item", err)
	}

	resp := response.PortfolioToResponse(item)
	return &resp, nil
}

func (s *contentService) DeletePortfolio(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid portfolio id %s", apperr.ErrNotFound, id)
	}
	if err := s.repo.Portfolio.Delete(ctx, itemID); err != nil {
		return apperr.Persistence("delete portfolio item", err)
	}
	return nil
}

func (s *contentService) CreateBlogPost(ctx context.Context, req *request.CreateBlogPostRequest) (*response.BlogPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	postSlug := req.Slug
	if postSlug == "" {
		postSlug = slug.Make(req.Title)
	}

	existing, err := s.repo.BlogPost.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, apperr.Persistence("check slug", err)
	}
	if existing != nil {
		return nil, apperr.Validation("slug", "slug already in use")
	}

	now := time.Now()
	post := &entity.BlogPost{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:       req.Title,
		Slug:        postSlug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Image:       req.Image,
		AuthorName:  req.AuthorName,
		IsPublished: req.IsPublished,
	}
	if post.IsPublished {
		post.PublishedAt = &now
	}

	if err := s.repo.BlogPost.Create(ctx, post); err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Validation("slug", "slug already in use")
		}
		return nil, apperr.Persistence("create blog post", err)
	}

	resp := response.BlogPostToResponse(post, true)
	return &resp, nil
}

func (s *contentService) UpdateBlogPost(ctx context.Context, id string, req *request.UpdateBlogPostRequest) (*response.BlogPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid blog post id %s", apperr.ErrNotFound, id)
	}

	post, err := s.repo.BlogPost.FindByID(ctx, postID)
	if err != nil {
		return nil, apperr.Persistence("lookup blog post", err)
	}
	if post == nil {
		return nil, fmt.Errorf("%w: blog post %s", apperr.ErrNotFound, id)
	}

	now := time.Now()
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Image != nil {
		post.Image = req.Image
	}
	if req.AuthorName != nil {
		post.AuthorName = *req.AuthorName
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
		if post.IsPublished && post.PublishedAt == nil {
			post.PublishedAt = &now
		}
	}
	post.UpdatedAt = now

	if err := s.repo.BlogPost.Update(ctx, post); err != nil {
		return nil, apperr.Persistence("update blog post", err)
	}

	resp := response.BlogPostToResponse(post, true)
	return &resp, nil
}

func (s *contentService) DeleteBlogPost(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid blog post id %s", apperr.ErrNotFound, id)
	}
	if err := s.repo.BlogPost.Delete(ctx, postID); err != nil {
		return apperr.Persistence("delete blog post", err)
	}
	return nil
}

func (s *contentService) UpdateSettings(ctx context.Context, req *request.UpdateSettingsRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation(errs)
	}

	now := time.Now()
	for _, entry := range req.Settings {
		setting := &entity.Setting{
			Base:  entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Key:   entry.Key,
			Value: entry.Value,
			Type:  entry.Type,
			Group: entry.Group,
		}
		if err := s.repo.Setting.Upsert(ctx, setting); err != nil {
			return apperr.Persistence("upsert setting", err)
		}
	}

	s.log.Info("Settings updated", zap.Int("count", len(req.Settings)))
	return nil
}

func parseOptionalUUID(value *string, field string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, apperr.Validation(field, "invalid id")
	}
	return &id, nil
}
