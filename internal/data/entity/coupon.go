package entity

import (
	"errors"
	"time"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

var (
	ErrCouponInactive     = errors.New("coupon is not active")
	ErrCouponNotStarted   = errors.New("coupon is not valid yet")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrCouponExhausted    = errors.New("coupon usage limit reached")
	ErrCouponMinimumOrder = errors.New("order total below coupon minimum")
)

type Coupon struct {
	Base
	Code          string       `db:"code"`
	DiscountType  DiscountType `db:"discount_type"`
	DiscountValue float64      `db:"discount_value"`
	MinimumOrder  *float64     `db:"minimum_order"`
	ValidFrom     *time.Time   `db:"valid_from"`
	ValidTo       *time.Time   `db:"valid_to"`
	UsageLimit    *int         `db:"usage_limit"`
	UsedCount     int          `db:"used_count"`
	IsActive      bool         `db:"is_active"`
}

// ValidateUsage checks whether the coupon may be applied to an order of
// the given subtotal at the given moment.
func (c *Coupon) ValidateUsage(now time.Time, subtotal float64) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return ErrCouponNotStarted
	}
	if c.ValidTo != nil && now.After(*c.ValidTo) {
		return ErrCouponExpired
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return ErrCouponExhausted
	}
	if c.MinimumOrder != nil && subtotal < *c.MinimumOrder {
		return ErrCouponMinimumOrder
	}
	return nil
}

// DiscountFor returns the discount amount for the subtotal, never
// exceeding the subtotal itself.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch c.DiscountType {
	case DiscountTypePercentage:
		discount = subtotal * c.DiscountValue / 100
	case DiscountTypeFixed:
		discount = c.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
