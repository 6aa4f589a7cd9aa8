package request

type CreateServiceRequest struct {
	Title           string   `json:"title" validate:"required,min=2,max=150"`
	Slug            string   `json:"slug" validate:"omitempty,max=170"`
	Description     string   `json:"description" validate:"required,max=500"`
	LongDescription *string  `json:"long_description,omitempty" validate:"omitempty,max=10000"`
	Icon            *string  `json:"icon,omitempty" validate:"omitempty,max=100"`
	Image           *string  `json:"image,omitempty" validate:"omitempty,max=500"`
	Price           float64  `json:"price" validate:"min=0"`
	PriceUnit       *string  `json:"price_unit,omitempty" validate:"omitempty,max=50"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	IsFeatured      bool     `json:"is_featured"`
	SortOrder       int      `json:"sort_order" validate:"min=0"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

type UpdateServiceRequest struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=2,max=150"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	LongDescription *string  `json:"long_description,omitempty" validate:"omitempty,max=10000"`
	Icon            *string  `json:"icon,omitempty" validate:"omitempty,max=100"`
	Image           *string  `json:"image,omitempty" validate:"omitempty,max=500"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	PriceUnit       *string  `json:"price_unit,omitempty" validate:"omitempty,max=50"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	IsFeatured      *bool    `json:"is_featured,omitempty"`
	SortOrder       *int     `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

type CreateCouponRequest struct {
	Code          string   `json:"code" validate:"required,min=3,max=50"`
	DiscountType  string   `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64  `json:"discount_value" validate:"required,gt=0"`
	MinimumOrder  *float64 `json:"minimum_order,omitempty" validate:"omitempty,min=0"`
	ValidFrom     *string  `json:"valid_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidTo       *string  `json:"valid_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	UsageLimit    *int     `json:"usage_limit,omitempty" validate:"omitempty,min=1"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

type UpdateCouponRequest struct {
	DiscountType  *string  `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue *float64 `json:"discount_value,omitempty" validate:"omitempty,gt=0"`
	MinimumOrder  *float64 `json:"minimum_order,omitempty" validate:"omitempty,min=0"`
	ValidFrom     *string  `json:"valid_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidTo       *string  `json:"valid_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	UsageLimit    *int     `json:"usage_limit,omitempty" validate:"omitempty,min=1"`
	IsActive      *bool    `json:"is_active,omitempty"`
}
