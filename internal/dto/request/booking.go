package request

type BookingLineRequest struct {
	ServiceID string  `json:"service_id" validate:"required,uuid4"`
	PackageID *string `json:"package_id,omitempty" validate:"omitempty,uuid4"`
	Quantity  int     `json:"quantity" validate:"required,min=1,max=100"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type CreateBookingRequest struct {
	CustomerName    string               `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string               `json:"customer_email" validate:"required,email,max=150"`
	CustomerPhone   string               `json:"customer_phone" validate:"required,min=7,max=20"`
	CustomerAddress *string              `json:"customer_address,omitempty" validate:"omitempty,max=500"`
	CustomerCity    *string              `json:"customer_city,omitempty" validate:"omitempty,max=100"`
	CustomerState   *string              `json:"customer_state,omitempty" validate:"omitempty,max=100"`
	CustomerMessage *string              `json:"customer_message,omitempty" validate:"omitempty,max=1000"`
	ServiceDate     string               `json:"service_date" validate:"required,datetime=2006-01-02"`
	ServiceTime     string               `json:"service_time" validate:"required"`
	Services        []BookingLineRequest `json:"services" validate:"required,min=1,dive"`
	CouponCode      *string              `json:"coupon_code,omitempty" validate:"omitempty,max=50"`
	CaptchaToken    string               `json:"captcha_token,omitempty"`
}

type BookingStatusRequest struct {
	BookingCode string `json:"booking_code" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email"`
}

type UpdateBookingRequest struct {
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	ServiceDate     *string  `json:"service_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ServiceTime     *string  `json:"service_time,omitempty"`
	Amount          *float64 `json:"amount,omitempty" validate:"omitempty,min=0"`
	TechnicianNotes *string  `json:"technician_notes,omitempty" validate:"omitempty,max=2000"`
	AdminNotes      *string  `json:"admin_notes,omitempty" validate:"omitempty,max=2000"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Status   string `json:"status" validate:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	Search   string `json:"search" validate:"omitempty,max=100"`
	DateFrom string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

type ExportBookingsRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type RecordPaymentRequest struct {
	Method     string   `json:"payment_method" validate:"required,oneof=cash transfer card"`
	Amount     float64  `json:"amount" validate:"required,min=0.01"`
	PaidAmount float64  `json:"paid_amount" validate:"min=0"`
	Status     string   `json:"status" validate:"required,oneof=pending paid failed refunded"`
	Details    *string  `json:"payment_details,omitempty" validate:"omitempty,max=1000"`
}
