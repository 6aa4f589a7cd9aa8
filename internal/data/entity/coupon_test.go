package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
func ptrT(v time.Time) *time.Time {
	return &v
}

func TestCouponValidateUsage(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	active := &Coupon{
		Code:          "SPRING10",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
	}
	assert.NoError(t, active.ValidateUsage(now, 100))

	inactive := &Coupon{Code: "OLD", IsActive: false}
	assert.ErrorIs(t, inactive.ValidateUsage(now, 100), ErrCouponInactive)

	notStarted := &Coupon{IsActive: true, ValidFrom: ptrT(now.Add(24 * time.Hour))}
	assert.ErrorIs(t, notStarted.ValidateUsage(now, 100), ErrCouponNotStarted)

	expired := &Coupon{IsActive: true, ValidTo: ptrT(now.Add(-24 * time.Hour))}
	assert.ErrorIs(t, expired.ValidateUsage(now, 100), ErrCouponExpired)

	exhausted := &Coupon{IsActive: true, UsageLimit: ptrI(5), UsedCount: 5}
	assert.ErrorIs(t, exhausted.ValidateUsage(now, 100), ErrCouponExhausted)

	belowMinimum := &Coupon{IsActive: true, MinimumOrder: ptrF(200)}
	assert.ErrorIs(t, belowMinimum.ValidateUsage(now, 100), ErrCouponMinimumOrder)
}

func TestCouponDiscountFor(t *testing.T) {
	percent := &Coupon{DiscountType: DiscountTypePercentage, DiscountValue: 25}
	assert.InDelta(t, 50, percent.DiscountFor(200), 0.001)

	fixed := &Coupon{DiscountType: DiscountTypeFixed, DiscountValue: 30}
	assert.InDelta(t, 30, fixed.DiscountFor(200), 0.001)

	// Discount never exceeds the subtotal.
	big := &Coupon{DiscountType: DiscountTypeFixed, DiscountValue: 500}
	assert.InDelta(t, 200, big.DiscountFor(200), 0.001)
}
