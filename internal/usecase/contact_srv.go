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
	"ora-booking/pkg/captcha"
	"ora-booking/pkg/mailer"
	"ora-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, remoteIP string, req *request.ContactRequest) (*response.ContactMessageResponse, error)

	// Admin
	ListMessages(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactMessageResponse], error)
	GetMessage(ctx context.Context, id string) (*response.ContactMessageResponse, error)
	UpdateMessage(ctx context.Context, id string, req *request.UpdateContactRequest) (*response.ContactMessageResponse, error)
	DeleteMessage(ctx context.Context, id string) error
}

type contactService struct {
	repo     *repository.Repository
	config   *utils.Config
	mailer   mailer.Mailer
	verifier captcha.Verifier
	log      *zap.Logger
}

func NewContactService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, verifier captcha.Verifier, log *zap.Logger) ContactService {
	return &contactService{
		repo:     repo,
		config:   config,
		mailer:   mail,
		verifier: verifier,
		log:      log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) Submit(ctx context.Context, remoteIP string, req *request.ContactRequest) (*response.ContactMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	if s.verifier != nil {
		if err := s.verifier.Verify(ctx, req.CaptchaToken, remoteIP); err != nil {
			s.log.Warn("Captcha rejected on contact form", zap.Error(err))
			return nil, apperr.Validation("captcha_token", "captcha verification failed")
		}
	}

	now := time.Now()
	message := &entity.ContactMessage{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  entity.ContactStatusUnread,
	}

	if err := s.repo.Contact.Create(ctx, message); err != nil {
		return nil, apperr.Persistence("create contact message", err)
	}

	s.log.Info("Contact message received",
		zap.String("message_id", message.ID.String()),
		zap.String("email", message.Email),
	)

	s.notifyContact(ctx, message)

	resp := response.ContactMessageToResponse(message)
	return &resp, nil
}

func (s *contactService) notifyContact(ctx context.Context, message *entity.ContactMessage) {
	if s.config.App.AdminMail != "" {
		body := fmt.Sprintf(
			"New contact message from %s (%s)\n\nSubject: %s\n\n%s\n",
			message.Name, message.Email, message.Subject, message.Message,
		)
		if err := s.mailer.Send(ctx, s.config.App.AdminMail,
			"New contact message - "+message.Subject, body); err != nil {
			s.log.Error("Failed to send contact alert",
				zap.Error(err),
				zap.String("message_id", message.ID.String()),
			)
		}
	}

	autoReply := fmt.Sprintf(
		"Hi %s,\n\nWe received your message and will get back to you shortly.\n\n%s\n",
		message.Name, s.config.App.Name,
	)
	if err := s.mailer.Send(ctx, message.Email, "We received your message", autoReply); err != nil {
		s.log.Error("Failed to send contact auto-reply",
			zap.Error(err),
			zap.String("message_id", message.ID.String()),
		)
	}
}

func (s *contactService) ListMessages(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactMessageResponse], error) {
	filter := entity.ContactStatus(status)

	messages, err := s.repo.Contact.FindFiltered(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Persistence("list contact messages", err)
	}

	total, err := s.repo.Contact.CountFiltered(ctx, filter)
	if err != nil {
		return nil, apperr.Persistence("count contact messages", err)
	}

	responses := make([]response.ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, response.ContactMessageToResponse(m))
	}

	return response.NewPaginatedResponse(responses, page.PageOrDefault(), page.Limit(), total), nil
}

func (s *contactService) GetMessage(ctx context.Context, id string) (*response.ContactMessageResponse, error) {
	message, err := s.findByIDString(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ContactMessageToResponse(message)
	return &resp, nil
}

func (s *contactService) UpdateMessage(ctx context.Context, id string, req *request.UpdateContactRequest) (*response.ContactMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	message, err := s.findByIDString(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Status != nil {
		next := entity.ContactStatus(*req.Status)
		if next == entity.ContactStatusReplied && message.RepliedAt == nil {
			message.RepliedAt = &now
		}
		message.Status = next
	}
	if req.AdminNotes != nil {
		message.AdminNotes = req.AdminNotes
	}
	message.UpdatedAt = now

	if err := s.repo.Contact.Update(ctx, message); err != nil {
		return nil, apperr.Persistence("update contact message", err)
	}

	resp := response.ContactMessageToResponse(message)
	return &resp, nil
}

func (s *contactService) DeleteMessage(ctx context.Context, id string) error {
	message, err := s.findByIDString(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Contact.Delete(ctx, message.ID); err != nil {
		return apperr.Persistence("delete contact message", err)
	}
	return nil
}

func (s *contactService) findByIDString(ctx context.Context, id string) (*entity.ContactMessage, error) {
	messageID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid message id %s", apperr.ErrNotFound, id)
	}

	message, err := s.repo.Contact.FindByID(ctx, messageID)
	if err != nil {
		return nil, apperr.Persistence("lookup contact message", err)
	}
	if message == nil {
		return nil, fmt.Errorf("%w: contact message %s", apperr.ErrNotFound, id)
	}
	return message, nil
}
