// Package service contains the business logic for the cart service.
package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yujinkim126/cart-service/internal/domain/model"
)

// ErrUnknownDiscountType is returned when a coupon carries a discount type
// outside the closed amount/percentage set. The engine rejects it instead
// of guessing a default.
var ErrUnknownDiscountType = errors.New("unknown coupon discount type")

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Pricer defines the pricing engine interface: pure total computations over
// a cart snapshot and an optional coupon. No state, no side effects.
type Pricer interface {
	MaxApplicableDiscountRate(item model.CartItem) float64
	LineItemTotal(item model.CartItem) decimal.Decimal
	CartTotals(items []model.CartItem, coupon *model.Coupon) (model.CartTotals, error)
}

// PricingService implements Pricer. All arithmetic runs on decimals and the
// three returned totals are rounded half-up to integer currency units only
// at the boundary; intermediates stay unrounded.
type PricingService struct{}

// NewPricingService creates a new PricingService.
func NewPricingService() *PricingService {
	return &PricingService{}
}

// MaxApplicableDiscountRate returns the highest volume discount rate whose
// quantity threshold the line item has reached, or 0 when no tier applies.
// The rate is monotonically non-decreasing in quantity for fixed tiers.
func (s *PricingService) MaxApplicableDiscountRate(item model.CartItem) float64 {
	var max float64
	for _, tier := range item.Product.Discounts {
		if item.Quantity >= tier.Quantity && tier.Rate > max {
			max = tier.Rate
		}
	}
	return max
}

// LineItemTotal returns price x quantity with the best applicable volume
// discount applied. When no discount applies the result is exactly
// price x quantity; the discount multiply is skipped entirely.
func (s *PricingService) LineItemTotal(item model.CartItem) decimal.Decimal {
	base := itemSubtotal(item)

	rate := s.MaxApplicableDiscountRate(item)
	if rate == 0 {
		return base
	}

	return base.Mul(one.Sub(decimal.NewFromFloat(rate)))
}

// CartTotals computes the three cart totals:
//
//   - BeforeDiscount: sum of price x quantity, no discounts.
//   - AfterDiscount: per-item volume discounts applied, then the selected
//     coupon. An amount coupon is clamped so the total never goes negative.
//   - DiscountAmount: BeforeDiscount - AfterDiscount, i.e. the combined
//     savings from volume discounts and the coupon.
//
// A nil coupon means no coupon is selected. A coupon with an unrecognized
// discount type yields ErrUnknownDiscountType.
func (s *PricingService) CartTotals(items []model.CartItem, coupon *model.Coupon) (model.CartTotals, error) {
	before := decimal.Zero
	afterItems := decimal.Zero

	for _, item := range items {
		before = before.Add(itemSubtotal(item))
		afterItems = afterItems.Add(s.LineItemTotal(item))
	}

	after := afterItems
	if coupon != nil {
		switch coupon.DiscountType {
		case model.DiscountTypeAmount:
			after = afterItems.Sub(decimal.NewFromFloat(coupon.DiscountValue))
			if after.IsNegative() {
				after = decimal.Zero
			}
		case model.DiscountTypePercentage:
			value := decimal.NewFromFloat(coupon.DiscountValue)
			after = afterItems.Mul(hundred.Sub(value)).Div(hundred)
		default:
			return model.CartTotals{}, fmt.Errorf("%w: %q", ErrUnknownDiscountType, coupon.DiscountType)
		}
	}

	return model.CartTotals{
		BeforeDiscount: roundCurrency(before),
		AfterDiscount:  roundCurrency(after),
		DiscountAmount: roundCurrency(before.Sub(after)),
	}, nil
}

// itemSubtotal returns price x quantity for a line item, undiscounted.
func itemSubtotal(item model.CartItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// roundCurrency rounds to the nearest integer currency unit, half-up.
// Totals are non-negative, so half away from zero and half-up coincide.
func roundCurrency(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
