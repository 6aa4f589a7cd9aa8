package response

import (
	"time"

	"ora-booking/internal/data/entity"
)

type ServiceResponse struct {
	ID              string                   `json:"id"`
	Title           string                   `json:"title"`
	Slug            string                   `json:"slug"`
	Description     string                   `json:"description"`
	LongDescription *string                  `json:"long_description,omitempty"`
	Icon            *string                  `json:"icon,omitempty"`
	Image           *string                  `json:"image,omitempty"`
	Price           float64                  `json:"price"`
	PriceUnit       string                   `json:"price_unit"`
	DurationMinutes *int                     `json:"duration_minutes,omitempty"`
	IsFeatured      bool                     `json:"is_featured"`
	SortOrder       int                      `json:"sort_order"`
	IsActive        bool                     `json:"is_active"`
	Packages        []ServicePackageResponse `json:"packages,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
}

type ServicePackageResponse struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"service_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	IsPopular   bool    `json:"is_popular"`
}

type CouponResponse struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	DiscountType  entity.DiscountType `json:"discount_type"`
	DiscountValue float64             `json:"discount_value"`
	MinimumOrder  *float64            `json:"minimum_order,omitempty"`
	ValidFrom     *time.Time          `json:"valid_from,omitempty"`
	ValidTo       *time.Time          `json:"valid_to,omitempty"`
	UsageLimit    *int                `json:"usage_limit,omitempty"`
	UsedCount     int                 `json:"used_count"`
	IsActive      bool                `json:"is_active"`
	CreatedAt     time.Time           `json:"created_at"`
}

func ServiceToResponse(service *entity.Service, packages []*entity.ServicePackage) ServiceResponse {
	resp := ServiceResponse{
		ID:              service.ID.String(),
		Title:           service.Title,
		Slug:            service.Slug,
		Description:     service.Description,
		LongDescription: service.LongDescription,
		Icon:            service.Icon,
		Image:           service.Image,
		Price:           service.Price,
		PriceUnit:       service.PriceUnit,
		DurationMinutes: service.DurationMinutes,
		IsFeatured:      service.IsFeatured,
		SortOrder:       service.SortOrder,
		IsActive:        service.IsActive,
		CreatedAt:       service.CreatedAt,
	}
	for _, p := range packages {
		resp.Packages = append(resp.Packages, ServicePackageToResponse(p))
	}
	return resp
}

func ServicePackageToResponse(p *entity.ServicePackage) ServicePackageResponse {
	return ServicePackageResponse{
		ID:          p.ID.String(),
		ServiceID:   p.ServiceID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsPopular:   p.IsPopular,
	}
}

func CouponToResponse(coupon *entity.Coupon) CouponResponse {
	return CouponResponse{
		ID:            coupon.ID.String(),
		Code:          coupon.Code,
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
		MinimumOrder:  coupon.MinimumOrder,
		ValidFrom:     coupon.ValidFrom,
		ValidTo:       coupon.ValidTo,
		UsageLimit:    coupon.UsageLimit,
		UsedCount:     coupon.UsedCount,
		IsActive:      coupon.IsActive,
		CreatedAt:     coupon.CreatedAt,
	}
}
