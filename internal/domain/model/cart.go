package model

import "time"

// CartItem pairs a product with the quantity held in a cart. Quantity is
// always positive: an item whose quantity would drop to zero is removed
// from the cart instead of being kept at zero.
//
// @Description Cart line item: one product and its quantity
// @Example {"product": {"id": "p1", "name": "Product 1", "price": 10000, "stock": 20, "discounts": []}, "quantity": 2}
type CartItem struct {
	// Product is a snapshot of the catalog product.
	Product Product `json:"product" bson:"product"`
	// Quantity is the number of units in the cart (>= 1).
	Quantity int `json:"quantity" bson:"quantity" example:"2"`
}

// Cart is an ordered list of line items, at most one per product ID, plus
// the selected coupon (or nil). Carts evolve only through the cart mutator;
// every transition produces a new value.
//
// @Description Cart snapshot with line items and the selected coupon
type Cart struct {
	// ID is the unique cart identifier.
	ID string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Items is the ordered list of line items.
	Items []CartItem `json:"items"`
	// Coupon is the selected coupon, at most one per cart.
	Coupon *Coupon `json:"coupon,omitempty"`
	// CreatedAt is when the cart was created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the cart was last mutated.
	UpdatedAt time.Time `json:"updated_at"`
}

// EmptyCart returns a new cart with the given ID and no items.
func EmptyCart(id string) Cart {
	now := time.Now()
	return Cart{
		ID:        id,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Quantity returns the quantity held for the given product ID, or 0 when
// the product is not in the cart.
func (c Cart) Quantity(productID string) int {
	for _, item := range c.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// CartTotals is the rounded result of a cart total computation. All three
// values are integer currency units, rounded half-up independently.
//
// @Description Cart totals before discounts, after all discounts, and the total savings
// @Example {"before_discount": 10000, "after_discount": 8100, "discount_amount": 1900}
type CartTotals struct {
	// BeforeDiscount is the undiscounted sum of price x quantity.
	BeforeDiscount int64 `json:"before_discount" example:"10000"`
	// AfterDiscount is the total after volume discounts and the coupon.
	AfterDiscount int64 `json:"after_discount" example:"8100"`
	// DiscountAmount is BeforeDiscount minus AfterDiscount: the combined
	// savings from volume discounts and the coupon.
	DiscountAmount int64 `json:"discount_amount" example:"1900"`
}
