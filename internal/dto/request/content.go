package request

type CreateTestimonialRequest struct {
	CustomerName string  `json:"customer_name" validate:"required,min=2,max=100"`
	ServiceID    *string `json:"service_id,omitempty" validate:"omitempty,uuid4"`
	Content      string  `json:"content" validate:"required,min=10,max=2000"`
	Rating       int     `json:"rating" validate:"required,min=1,max=5"`
	IsApproved   bool    `json:"is_approved"`
	IsFeatured   bool    `json:"is_featured"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type UpdateTestimonialRequest struct {
	CustomerName *string `json:"customer_name,omitempty" validate:"omitempty,min=2,max=100"`
	ServiceID    *string `json:"service_id,omitempty" validate:"omitempty,uuid4"`
	Content      *string `json:"content,omitempty" validate:"omitempty,min=10,max=2000"`
	Rating       *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	IsApproved   *bool   `json:"is_approved,omitempty"`
	IsFeatured   *bool   `json:"is_featured,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type CreateTeamMemberRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	Position  string  `json:"position" validate:"required,max=100"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Photo     *string `json:"photo,omitempty" validate:"omitempty,max=500"`
	SortOrder int     `json:"sort_order" validate:"min=0"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type UpdateTeamMemberRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Position  *string `json:"position,omitempty" validate:"omitempty,max=100"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Photo     *string `json:"photo,omitempty" validate:"omitempty,max=500"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type CreateFAQRequest struct {
	Question  string  `json:"question" validate:"required,min=5,max=500"`
	Answer    string  `json:"answer" validate:"required,min=5,max=5000"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=100"`
	SortOrder int     `json:"sort_order" validate:"min=0"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type UpdateFAQRequest struct {
	Question  *string `json:"question,omitempty" validate:"omitempty,min=5,max=500"`
	Answer    *string `json:"answer,omitempty" validate:"omitempty,min=5,max=5000"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=100"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type CreatePortfolioRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       *string `json:"image,omitempty" validate:"omitempty,max=500"`
	ServiceID   *string `json:"service_id,omitempty" validate:"omitempty,uuid4"`
	SortOrder   int     `json:"sort_order" validate:"min=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type UpdatePortfolioRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       *string `json:"image,omitempty" validate:"omitempty,max=500"`
	ServiceID   *string `json:"service_id,omitempty" validate:"omitempty,uuid4"`
	SortOrder   *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type CreateBlogPostRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Slug        string  `json:"slug" validate:"omitempty,max=220"`
	Excerpt     *string `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content     string  `json:"content" validate:"required"`
	Image       *string `json:"image,omitempty" validate:"omitempty,max=500"`
	AuthorName  string  `json:"author_name" validate:"required,max=100"`
	IsPublished bool    `json:"is_published"`
}

type UpdateBlogPostRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Excerpt     *string `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content     *string `json:"content,omitempty"`
	Image       *string `json:"image,omitempty" validate:"omitempty,max=500"`
	AuthorName  *string `json:"author_name,omitempty" validate:"omitempty,max=100"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

type SettingEntryRequest struct {
	Key   string  `json:"key" validate:"required,max=100"`
	Value *string `json:"value"`
	Type  string  `json:"type" validate:"required,oneof=text textarea image boolean"`
	Group string  `json:"group" validate:"required,max=50"`
}

type UpdateSettingsRequest struct {
	Settings []SettingEntryRequest `json:"settings" validate:"required,min=1,dive"`
}
