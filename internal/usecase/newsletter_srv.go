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
	"ora-booking/pkg/mailer"
	"ora-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, req *request.SubscribeRequest) (*response.SubscriberResponse, error)
	Unsubscribe(ctx context.Context, token string) error

	// Admin
	ListSubscribers(ctx context.Context, activeOnly bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.SubscriberResponse], error)
}

type newsletterService struct {
	repo   *repository.Repository
	config *utils.Config
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewNewsletterService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) NewsletterService {
	return &newsletterService{
		repo:   repo,
		config: config,
		mailer: mail,
		log:    log.With(zap.String("service", "newsletter")),
	}
}

// Subscribe adds a new subscriber, or reactivates an unsubscribed one.
// Subscribing twice with the same address is not an error.
func (s *newsletterService) Subscribe(ctx context.Context, req *request.SubscribeRequest) (*response.SubscriberResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	now := time.Now()

	existing, err := s.repo.Newsletter.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Persistence("lookup subscriber", err)
	}

	if existing != nil {
		if !existing.IsActive {
			existing.IsActive = true
			existing.SubscribedAt = now
			existing.UnsubscribedAt = nil
			existing.UpdatedAt = now
			if req.Name != nil {
				existing.Name = req.Name
			}
			if err := s.repo.Newsletter.Update(ctx, existing); err != nil {
				return nil, apperr.Persistence("reactivate subscriber", err)
			}
			s.log.Info("Subscriber reactivated", zap.String("email", email))
		}
		resp := response.SubscriberToResponse(existing)
		return &resp, nil
	}

	subscriber := &entity.NewsletterSubscriber{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:            email,
		Name:             req.Name,
		IsActive:         true,
		UnsubscribeToken: utils.GenerateUnsubscribeToken(),
		SubscribedAt:     now,
	}

	err = s.repo.Newsletter.Create(ctx, subscriber)
	if apperr.IsUniqueViolation(err) {
		// Raced with a concurrent subscribe for the same address.
		existing, ferr := s.repo.Newsletter.FindByEmail(ctx, email)
		if ferr == nil && existing != nil {
			resp := response.SubscriberToResponse(existing)
			return &resp, nil
		}
	}
	if err != nil {
		return nil, apperr.Persistence("create subscriber", err)
	}

	s.log.Info("Subscriber added", zap.String("email", email))

	s.sendWelcome(ctx, subscriber)

	resp := response.SubscriberToResponse(subscriber)
	return &resp, nil
}

func (s *newsletterService) sendWelcome(ctx context.Context, subscriber *entity.NewsletterSubscriber) {
	name := subscriber.Email
	if subscriber.Name != nil && *subscriber.Name != "" {
		name = *subscriber.Name
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for subscribing to the %s newsletter.\n\n"+
			"To unsubscribe at any time, visit:\n%s/api/newsletter/unsubscribe/%s\n",
		name,
		s.config.App.Name,
		s.config.App.BaseURL,
		subscriber.UnsubscribeToken,
	)

	if err := s.mailer.Send(ctx, subscriber.Email, "Welcome to our newsletter", body); err != nil {
		s.log.Error("Failed to send welcome mail",
			zap.Error(err),
			zap.String("email", subscriber.Email),
		)
	}
}

func (s *newsletterService) Unsubscribe(ctx context.Context, token string) error {
	subscriber, err := s.repo.Newsletter.FindByToken(ctx, token)
	if err != nil {
		return apperr.Persistence("lookup subscriber", err)
	}
	if subscriber == nil {
		return fmt.Errorf("%w: unknown unsubscribe token", apperr.ErrNotFound)
	}

	if !subscriber.IsActive {
		return nil
	}

	now := time.Now()
	subscriber.IsActive = false
	subscriber.UnsubscribedAt = &now
	subscriber.UpdatedAt = now

	if err := s.repo.Newsletter.Update(ctx, subscriber); err != nil {
		return apperr.Persistence("unsubscribe", err)
	}

	s.log.Info("Subscriber unsubscribed", zap.String("email", subscriber.Email))
	return nil
}

func (s *newsletterService) ListSubscribers(ctx context.Context, activeOnly bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.SubscriberResponse], error) {
	subscribers, err := s.repo.Newsletter.FindAll(ctx, activeOnly, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Persistence("list subscribers", err)
	}

	total, err := s.repo.Newsletter.CountAll(ctx, activeOnly)
	if err != nil {
		return nil, apperr.Persistence("count subscribers", err)
	}

	responses := make([]response.SubscriberResponse, 0, len(subscribers))
	for _, sub := range subscribers {
		responses = append(responses, response.SubscriberToResponse(sub))
	}

	return response.NewPaginatedResponse(responses, page.PageOrDefault(), page.Limit(), total), nil
}
