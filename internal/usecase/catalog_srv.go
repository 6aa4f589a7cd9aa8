package usecase

import (
	"context"
	"fmt"
	"strings"
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

type CatalogService interface {
	// Public
	ListServices(ctx context.Context, featuredOnly bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ServiceResponse], error)
	GetServiceBySlug(ctx context.Context, serviceSlug string) (*response.ServiceResponse, error)

	// Admin
	ListAllServices(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ServiceResponse], error)
	CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID string) error

	ListCoupons(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CouponResponse], error)
	CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponResponse, error)
	UpdateCoupon(ctx context.Context, couponID string, req *request.UpdateCouponRequest) (*response.CouponResponse, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context, featuredOnly bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ServiceResponse], error) {
	services, err := s.repo.Service.FindActive(ctx, featuredOnly, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Persistence("list services", err)
	}

	total, err := s.repo.Service.CountActive(ctx, featuredOnly)
	if err != nil {
		return nil, apperr.Persistence("count services", err)
	}

	responses := make([]response.ServiceResponse, 0, len(services))
	for _, svc := range services {
		responses = append(responses, response.ServiceToResponse(svc, nil))
	}

	return response.NewPaginatedResponse(responses, page.PageOrDefault(), page.Limit(), total), nil
}

func (s *catalogService) GetServiceBySlug(ctx context.Context, serviceSlug string) (*response.ServiceResponse, error) {
	service, err := s.repo.Service.FindBySlug(ctx, serviceSlug)
	if err != nil {
		return nil, apperr.Persistence("lookup service", err)
	}
	if service == nil || !service.IsActive {
		return nil, fmt.Errorf("%w: service %s", apperr.ErrNotFound, serviceSlug)
	}

	packages, err := s.repo.Service.FindPackages(ctx, service.ID)
	if err != nil {
		return nil, apperr.Persistence("load service packages", err)
	}

	resp := response.ServiceToResponse(service, packages)
	return &resp, nil
}

func (s *catalogService) ListAllServices(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ServiceResponse], error) {
	services, err := s.repo.Service.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Persistence("list services", err)
	}

	total, err := s.repo.Service.CountAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("count services", err)
	}

	responses := make([]response.ServiceResponse, 0, len(services))
	for _, svc := range services {
		responses = append(responses, response.ServiceToResponse(svc, nil))
	}

	return response.NewPaginatedResponse(responses, page.PageOrDefault(), page.Limit(), total), nil
}

func (s *catalogService) CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	serviceSlug := req.Slug
	if serviceSlug == "" {
		serviceSlug = slug.Make(req.Title)
	}

	existing, err := s.repo.Service.FindBySlug(ctx, serviceSlug)
	if err != nil {
		return nil, apperr.Persistence("check slug", err)
	}
	if existing != nil {
		return nil, apperr.Validation("slug", "slug already in use")
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:           req.Title,
		Slug:            serviceSlug,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Icon:            req.Icon,
		Image:           req.Image,
		Price:           req.Price,
		PriceUnit:       derefString(req.PriceUnit),
		DurationMinutes: req.DurationMinutes,
		IsFeatured:      req.IsFeatured,
		SortOrder:       req.SortOrder,
		IsActive:        true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Validation("slug", "slug already in use")
		}
		return nil, apperr.Persistence("create service", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("slug", service.Slug),
	)

	resp := response.ServiceToResponse(service, nil)
	return &resp, nil
}

// UpdateService edits a service. The slug is never regenerated on a
// title change so published links keep working.
func (s *catalogService) UpdateService(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	service, err := s.findServiceByIDString(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.LongDescription != nil {
		service.LongDescription = req.LongDescription
	}
	if req.Icon != nil {
		service.Icon = req.Icon
	}
	if req.Image != nil {
		service.Image = req.Image
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.PriceUnit != nil {
		service.PriceUnit = *req.PriceUnit
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = req.DurationMinutes
	}
	if req.IsFeatured != nil {
		service.IsFeatured = *req.IsFeatured
	}
	if req.SortOrder != nil {
		service.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		return nil, apperr.Persistence("update service", err)
	}

	resp := response.ServiceToResponse(service, nil)
	return &resp, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	service, err := s.findServiceByIDString(ctx, serviceID)
	if err != nil {
		return err
	}

	count, err := s.repo.Booking.CountByServiceID(ctx, service.ID)
	if err != nil {
		return apperr.Persistence("count service bookings", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: service %s has %d bookings", apperr.ErrConflict, service.Slug, count)
	}

	if err := s.repo.Service.Delete(ctx, service.ID); err != nil {
		// A booking may have referenced the service after the count check.
		if apperr.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: service %s has bookings", apperr.ErrConflict, service.Slug)
		}
		return apperr.Persistence("delete service", err)
	}
	return nil
}

func (s *catalogService) ListCoupons(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CouponResponse], error) {
	coupons, err := s.repo.Coupon.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Persistence("list coupons", err)
	}

	total, err := s.repo.Coupon.CountAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("count coupons", err)
	}

	responses := make([]response.CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		responses = append(responses, response.CouponToResponse(c))
	}

	return response.NewPaginatedResponse(responses, page.PageOrDefault(), page.Limit(), total), nil
}

func (s *catalogService) CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	existing, err := s.repo.Coupon.FindByCode(ctx, code)
	if err != nil {
		return nil, apperr.Persistence("check coupon code", err)
	}
	if existing != nil {
		return nil, apperr.Validation("code", "coupon code already exists")
	}

	now := time.Now()
	coupon := &entity.Coupon{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:          code,
		DiscountType:  entity.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MinimumOrder:  req.MinimumOrder,
		UsageLimit:    req.UsageLimit,
		IsActive:      true,
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}
	if coupon.ValidFrom, err = parseOptionalDate(req.ValidFrom, "valid_from"); err != nil {
		return nil, err
	}
	if coupon.ValidTo, err = parseOptionalDate(req.ValidTo, "valid_to"); err != nil {
		return nil, err
	}

	if err := s.repo.Coupon.Create(ctx, coupon); err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Validation("code", "coupon code already exists")
		}
		return nil, apperr.Persistence("create coupon", err)
	}

	s.log.Info("Coupon created", zap.String("code", coupon.Code))

	resp := response.CouponToResponse(coupon)
	return &resp, nil
}

func (s *catalogService) UpdateCoupon(ctx context.Context, couponID string, req *request.UpdateCouponRequest) (*response.CouponResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	id, err := uuid.Parse(couponID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid coupon id %s", apperr.ErrNotFound, couponID)
	}

	coupon, err := s.repo.Coupon.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("lookup coupon", err)
	}
	if coupon == nil {
		return nil, fmt.Errorf("%w: coupon %s", apperr.ErrNotFound, couponID)
	}

	if req.DiscountType != nil {
		coupon.DiscountType = entity.DiscountType(*req.DiscountType)
	}
	if req.DiscountValue != nil {
		coupon.DiscountValue = *req.DiscountValue
	}
	if req.MinimumOrder != nil {
		coupon.MinimumOrder = req.MinimumOrder
	}
	if req.UsageLimit != nil {
		coupon.UsageLimit = req.UsageLimit
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}
	if req.ValidFrom != nil {
		if coupon.ValidFrom, err = parseOptionalDate(req.ValidFrom, "valid_from"); err != nil {
			return nil, err
		}
	}
	if req.ValidTo != nil {
		if coupon.ValidTo, err = parseOptionalDate(req.ValidTo, "valid_to"); err != nil {
			return nil, err
		}
	}
	coupon.UpdatedAt = time.Now()

	if err := s.repo.Coupon.Update(ctx, coupon); err != nil {
		return nil, apperr.Persistence("update coupon", err)
	}

	resp := response.CouponToResponse(coupon)
	return &resp, nil
}

func (s *catalogService) DeleteCoupon(ctx context.Context, couponID string) error {
	id, err := uuid.Parse(couponID)
	if err != nil {
		return fmt.Errorf("%w: invalid coupon id %s", apperr.ErrNotFound, couponID)
	}

	coupon, err := s.repo.Coupon.FindByID(ctx, id)
	if err != nil {
		return apperr.Persistence("lookup coupon", err)
	}
	if coupon == nil {
		return fmt.Errorf("%w: coupon %s", apperr.ErrNotFound, couponID)
	}

	if err := s.repo.Coupon.Delete(ctx, coupon.ID); err != nil {
		return apperr.Persistence("delete coupon", err)
	}
	return nil
}

func (s *catalogService) findServiceByIDString(ctx context.Context, serviceID string) (*entity.Service, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service id %s", apperr.ErrNotFound, serviceID)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("lookup service", err)
	}
	if service == nil {
		return nil, fmt.Errorf("%w: service %s", apperr.ErrNotFound, serviceID)
	}
	return service, nil
}

func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := utils.ParseDate(*value)
	if err != nil {
		return nil, apperr.Validation(field, "must be a valid date (YYYY-MM-DD)")
	}
	return &parsed, nil
}
