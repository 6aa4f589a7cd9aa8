package response

import (
	"time"

	"ora-booking/internal/data/entity"
)

type BookingLineResponse struct {
	ID           string  `json:"id"`
	ServiceID    string  `json:"service_id"`
	ServiceTitle string  `json:"service_title,omitempty"`
	PackageID    *string `json:"package_id,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	Notes        *string `json:"notes,omitempty"`
}

type BookingResponse struct {
	ID              string                `json:"id"`
	BookingCode     string                `json:"booking_code"`
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email"`
	CustomerPhone   string                `json:"customer_phone"`
	CustomerAddress string                `json:"customer_address,omitempty"`
	CustomerCity    string                `json:"customer_city,omitempty"`
	CustomerState   string                `json:"customer_state,omitempty"`
	CustomerMessage *string               `json:"customer_message,omitempty"`
	ServiceDate     string                `json:"service_date"`
	ServiceTime     string                `json:"service_time"`
	Status          entity.BookingStatus  `json:"status"`
	Amount          float64               `json:"amount"`
	DiscountAmount  float64               `json:"discount_amount"`
	TechnicianNotes *string               `json:"technician_notes,omitempty"`
	AdminNotes      *string               `json:"admin_notes,omitempty"`
	Services        []BookingLineResponse `json:"services,omitempty"`
	ConfirmedAt     *time.Time            `json:"confirmed_at,omitempty"`
	StartedAt       *time.Time            `json:"started_at,omitempty"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	CancelledAt     *time.Time            `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// BookingStatusResponse is the public lookup view: no admin notes, no
// customer address details.
type BookingStatusResponse struct {
	BookingCode string                  `json:"booking_code"`
	Status      entity.BookingStatus    `json:"status"`
	ServiceDate string                  `json:"service_date"`
	ServiceTime string                  `json:"service_time"`
	Amount      float64                 `json:"amount"`
	History     []StatusHistoryResponse `json:"history"`
}

type StatusHistoryResponse struct {
	FromStatus entity.BookingStatus `json:"from_status"`
	ToStatus   entity.BookingStatus `json:"to_status"`
	ChangedBy  string               `json:"changed_by"`
	Note       *string              `json:"note,omitempty"`
	ChangedAt  time.Time            `json:"changed_at"`
}

type PaymentResponse struct {
	ID         string               `json:"id"`
	BookingID  string               `json:"booking_id"`
	PaymentNo  string               `json:"payment_no"`
	Method     string               `json:"payment_method"`
	Amount     float64              `json:"amount"`
	PaidAmount float64              `json:"paid_amount"`
	Status     entity.PaymentStatus `json:"status"`
	Details    *string              `json:"payment_details,omitempty"`
	PaidAt     *time.Time           `json:"paid_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

func BookingLineToResponse(line *entity.BookingService, serviceTitle string) BookingLineResponse {
	resp := BookingLineResponse{
		ID:           line.ID.String(),
		ServiceID:    line.ServiceID.String(),
		ServiceTitle: serviceTitle,
		Quantity:     line.Quantity,
		UnitPrice:    line.UnitPrice,
		TotalPrice:   line.TotalPrice,
		Notes:        line.Notes,
	}
	if line.PackageID != nil {
		id := line.PackageID.String()
		resp.PackageID = &id
	}
	return resp
}

func BookingToResponse(booking *entity.Booking, lines []BookingLineResponse) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		BookingCode:     booking.BookingCode,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		CustomerAddress: booking.CustomerAddress,
		CustomerCity:    booking.CustomerCity,
		CustomerState:   booking.CustomerState,
		CustomerMessage: booking.CustomerMessage,
		ServiceDate:     booking.ServiceDate.Format("2006-01-02"),
		ServiceTime:     booking.ServiceTime,
		Status:          booking.Status,
		Amount:          booking.Amount,
		DiscountAmount:  booking.DiscountAmount,
		TechnicianNotes: booking.TechnicianNotes,
		AdminNotes:      booking.AdminNotes,
		Services:        lines,
		ConfirmedAt:     booking.ConfirmedAt,
		StartedAt:       booking.StartedAt,
		CompletedAt:     booking.CompletedAt,
		CancelledAt:     booking.CancelledAt,
		CreatedAt:       booking.CreatedAt,
	}
}

func HistoryToResponse(history []*entity.BookingStatusHistory) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, StatusHistoryResponse{
			FromStatus: h.FromStatus,
			ToStatus:   h.ToStatus,
			ChangedBy:  h.ChangedBy,
			Note:       h.Note,
			ChangedAt:  h.CreatedAt,
		})
	}
	return out
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         payment.ID.String(),
		BookingID:  payment.BookingID.String(),
		PaymentNo:  payment.PaymentNo,
		Method:     payment.Method,
		Amount:     payment.Amount,
		PaidAmount: payment.PaidAmount,
		Status:     payment.Status,
		Details:    payment.Details,
		PaidAt:     payment.PaidAt,
		CreatedAt:  payment.CreatedAt,
	}
}
