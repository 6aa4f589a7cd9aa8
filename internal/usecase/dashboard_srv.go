package usecase

import (
	"context"
	"time"

	"ora-booking/internal/data/entity"
	"ora-booking/internal/data/repository"
	"ora-booking/internal/dto/response"
	"ora-booking/pkg/apperr"

	"go.uber.org/zap"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	resp := &response.DashboardResponse{}

	var err error
	if resp.TotalBookings, err = s.repo.Booking.CountAll(ctx); err != nil {
		return nil, apperr.Persistence("count bookings", err)
	}
	if resp.PendingBookings, err = s.repo.Booking.CountByStatus(ctx, entity.BookingStatusPending); err != nil {
		return nil, apperr.Persistence("count pending bookings", err)
	}
	if resp.CompletedBookings, err = s.repo.Booking.CountByStatus(ctx, entity.BookingStatusCompleted); err != nil {
		return nil, apperr.Persistence("count completed bookings", err)
	}
	if resp.TotalServices, err = s.repo.Service.CountAll(ctx); err != nil {
		return nil, apperr.Persistence("count services", err)
	}
	if resp.TotalRevenue, err = s.repo.Booking.SumCompletedAmount(ctx); err != nil {
		return nil, apperr.Persistence("sum revenue", err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if resp.MonthRevenue, err = s.repo.Booking.SumCompletedAmountSince(ctx, monthStart); err != nil {
		return nil, apperr.Persistence("sum month revenue", err)
	}

	recent, err := s.repo.Booking.FindRecent(ctx, 10)
	if err != nil {
		return nil, apperr.Persistence("load recent bookings", err)
	}
	resp.RecentBookings = make([]response.BookingResponse, 0, len(recent))
	for _, b := range recent {
		resp.RecentBookings = append(resp.RecentBookings, response.BookingToResponse(b, nil))
	}

	top, err := s.repo.Service.TopByCompletedBookings(ctx, 5)
	if err != nil {
		return nil, apperr.Persistence("load top services", err)
	}
	resp.TopServices = make([]response.TopServiceResponse, 0, len(top))
	for _, t := range top {
		resp.TopServices = append(resp.TopServices, response.TopServiceResponse{
			ServiceID:    t.Service.ID.String(),
			Title:        t.Service.Title,
			Slug:         t.Service.Slug,
			BookingCount: t.BookingCount,
		})
	}

	return resp, nil
}
