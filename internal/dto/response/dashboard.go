package response

type DashboardResponse struct {
	TotalBookings     int64                `json:"total_bookings"`
	PendingBookings   int64                `json:"pending_bookings"`
	CompletedBookings int64                `json:"completed_bookings"`
	TotalServices     int64                `json:"total_services"`
	TotalRevenue      float64              `json:"total_revenue"`
	MonthRevenue      float64              `json:"month_revenue"`
	RecentBookings    []BookingResponse    `json:"recent_bookings"`
	TopServices       []TopServiceResponse `json:"top_services"`
}

type TopServiceResponse struct {
	ServiceID    string `json:"service_id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	BookingCount int64  `json:"booking_count"`
}
