// Package model defines the core domain entities for the cart service.
package model

// DiscountType identifies how a coupon discounts the cart total.
// It is a closed set: exactly "amount" and "percentage" are valid.
type DiscountType string

const (
	// DiscountTypeAmount subtracts a fixed currency amount from the total.
	DiscountTypeAmount DiscountType = "amount"
	// DiscountTypePercentage reduces the total by a percentage in [0,100].
	DiscountTypePercentage DiscountType = "percentage"
)

// Valid reports whether the discount type is one of the known variants.
// Unknown types must be rejected at the configuration boundary; the pricing
// engine never defaults them to anything.
func (t DiscountType) Valid() bool {
	return t == DiscountTypeAmount || t == DiscountTypePercentage
}

// DiscountTier is a volume discount: Rate applies to a line item once its
// quantity reaches Quantity.
//
// @Description Volume discount tier unlocked at a quantity threshold
// @Example {"quantity": 10, "rate": 0.1}
type DiscountTier struct {
	// Quantity is the minimum line item quantity for the tier to apply.
	Quantity int `json:"quantity" bson:"quantity" example:"10"`
	// Rate is the discount fraction in [0,1).
	Rate float64 `json:"rate" bson:"rate" example:"0.1"`
}

// Product is catalog reference data. The cart core only reads products and
// never mutates them.
//
// @Description Catalog product with unit price, stock ceiling and volume discount tiers
// @Example {"id": "p1", "name": "Product 1", "price": 10000, "stock": 20, "discounts": [{"quantity": 10, "rate": 0.1}]}
type Product struct {
	// ID is the unique product identifier.
	ID string `json:"id" bson:"_id" example:"p1"`
	// Name is the display name.
	Name string `json:"name" bson:"name" example:"Product 1"`
	// Price is the non-negative unit price in currency units.
	Price float64 `json:"price" bson:"price" example:"10000"`
	// Stock is the hard ceiling on the quantity a single line item may hold.
	Stock int `json:"stock" bson:"stock" example:"20"`
	// Discounts is the ordered list of volume discount tiers.
	Discounts []DiscountTier `json:"discounts" bson:"discounts"`
}

// Coupon is a cart-wide discount applied once, after per-item discounts.
//
// @Description Cart-wide coupon, either a fixed amount or a percentage
// @Example {"name": "5000 off", "code": "AMOUNT5000", "discount_type": "amount", "discount_value": 5000}
type Coupon struct {
	// Name is the display name.
	Name string `json:"name" bson:"name" example:"5000 off"`
	// Code is the unique coupon code used to select the coupon.
	Code string `json:"code" bson:"_id" example:"AMOUNT5000"`
	// DiscountType is "amount" or "percentage".
	DiscountType DiscountType `json:"discount_type" bson:"discount_type" example:"amount"`
	// DiscountValue is a currency amount for "amount" coupons, or a value
	// in [0,100] for "percentage" coupons.
	DiscountValue float64 `json:"discount_value" bson:"discount_value" example:"5000"`
}
