package response

import (
	"time"

	"ora-booking/internal/data/entity"

	"github.com/google/uuid"
)

type TestimonialResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	ServiceID    *string   `json:"service_id,omitempty"`
	Content      string    `json:"content"`
	Rating       int       `json:"rating"`
	IsApproved   bool      `json:"is_approved"`
	IsFeatured   bool      `json:"is_featured"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type TeamMemberResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Bio       *string `json:"bio,omitempty"`
	Photo     *string `json:"photo,omitempty"`
	SortOrder int     `json:"sort_order"`
	IsActive  bool    `json:"is_active"`
}

type FAQResponse struct {
	ID        string  `json:"id"`
	Question  string  `json:"question"`
	Answer    string  `json:"answer"`
	Category  *string `json:"category,omitempty"`
	SortOrder int     `json:"sort_order"`
	IsActive  bool    `json:"is_active"`
}

type PortfolioResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	ServiceID   *string `json:"service_id,omitempty"`
	SortOrder   int     `json:"sort_order"`
	IsActive    bool    `json:"is_active"`
}

type BlogPostResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	Image       *string    `json:"image,omitempty"`
	AuthorName  string     `json:"author_name"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SettingResponse struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
	Type  string  `json:"type"`
	Group string  `json:"group"`
}

type ContactMessageResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      *string              `json:"phone,omitempty"`
	Subject    string               `json:"subject"`
	Message    string               `json:"message"`
	Status     entity.ContactStatus `json:"status"`
	AdminNotes *string              `json:"admin_notes,omitempty"`
	RepliedAt  *time.Time           `json:"replied_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

type SubscriberResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name,omitempty"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func TestimonialToResponse(t *entity.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:           t.ID.String(),
		CustomerName: t.CustomerName,
		ServiceID:    uuidPtrToString(t.ServiceID),
		Content:      t.Content,
		Rating:       t.Rating,
		IsApproved:   t.IsApproved,
		IsFeatured:   t.IsFeatured,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
	}
}

func TeamMemberToResponse(m *entity.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Position:  m.Position,
		Bio:       m.Bio,
		Photo:     m.Photo,
		SortOrder: m.SortOrder,
		IsActive:  m.IsActive,
	}
}

func FAQToResponse(f *entity.FAQ) FAQResponse {
	return FAQResponse{
		ID:        f.ID.String(),
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		SortOrder: f.SortOrder,
		IsActive:  f.IsActive,
	}
}

func PortfolioToResponse(p *entity.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		ServiceID:   uuidPtrToString(p.ServiceID),
		SortOrder:   p.SortOrder,
		IsActive:    p.IsActive,
	}
}

// BlogPostToResponse renders the full post; list views pass
// includeContent=false to keep payloads small.
func BlogPostToResponse(p *entity.BlogPost, includeContent bool) BlogPostResponse {
	resp := BlogPostResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Image:       p.Image,
		AuthorName:  p.AuthorName,
		IsPublished: p.IsPublished,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
	}
	if includeContent {
		resp.Content = p.Content
	}
	return resp
}

func SettingToResponse(s *entity.Setting) SettingResponse {
	return SettingResponse{
		Key:   s.Key,
		Value: s.Value,
		Type:  s.Type,
		Group: s.Group,
	}
}

func ContactMessageToResponse(m *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:         m.ID.String(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Subject:    m.Subject,
		Message:    m.Message,
		Status:     m.Status,
		AdminNotes: m.AdminNotes,
		RepliedAt:  m.RepliedAt,
		CreatedAt:  m.CreatedAt,
	}
}

func SubscriberToResponse(s *entity.NewsletterSubscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:           s.ID.String(),
		Email:        s.Email,
		Name:         s.Name,
		IsActive:     s.IsActive,
		SubscribedAt: s.SubscribedAt,
	}
}
