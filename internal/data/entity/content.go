package entity

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	Base
	CustomerName string     `db:"customer_name"`
	ServiceID    *uuid.UUID `db:"service_id"`
	Content      string     `db:"content"`
	Rating       int        `db:"rating"` // 1-5
	IsApproved   bool       `db:"is_approved"`
	IsFeatured   bool       `db:"is_featured"`
	IsActive     bool       `db:"is_active"`
}

type TeamMember struct {
	Base
	Name      string  `db:"name"`
	Position  string  `db:"position"`
	Bio       *string `db:"bio"`
	Photo     *string `db:"photo"`
	SortOrder int     `db:"sort_order"`
	IsActive  bool    `db:"is_active"`
}

type FAQ struct {
	Base
	Question  string  `db:"question"`
	Answer    string  `db:"answer"`
	Category  *string `db:"category"`
	SortOrder int     `db:"sort_order"`
	IsActive  bool    `db:"is_active"`
}

type Portfolio struct {
	Base
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Image       *string    `db:"image"`
	ServiceID   *uuid.UUID `db:"service_id"`
	SortOrder   int        `db:"sort_order"`
	IsActive    bool       `db:"is_active"`
}

type BlogPost struct {
	Base
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     *string    `db:"excerpt"`
	Content     string     `db:"content"`
	Image       *string    `db:"image"`
	AuthorName  string     `db:"author_name"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
}
