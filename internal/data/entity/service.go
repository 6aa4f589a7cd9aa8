package entity

import "github.com/google/uuid"

type Service struct {
	Base
	Title           string  `db:"title"`
	Slug            string  `db:"slug"`
	Description     string  `db:"description"`
	LongDescription *string `db:"long_description"`
	Icon            *string `db:"icon"`
	Image           *string `db:"image"`
	Price           float64 `db:"price"`
	PriceUnit       string  `db:"price_unit"` // currency prefix, e.g. "RM"
	DurationMinutes *int    `db:"duration_minutes"`
	IsFeatured      bool    `db:"is_featured"`
	SortOrder       int     `db:"sort_order"`
	IsActive        bool    `db:"is_active"`
}

type ServicePackage struct {
	Base
	ServiceID   uuid.UUID `db:"service_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	IsPopular   bool      `db:"is_popular"`
	IsActive    bool      `db:"is_active"`
}
