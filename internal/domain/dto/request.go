// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// AddItemRequest represents the JSON request body for adding a product to a cart.
//
// @Description Request to add one unit of a product to the cart
// @Example {"product_id": "p1"}
type AddItemRequest struct {
	// ProductID is the catalog ID of the product to add.
	ProductID string `json:"product_id" binding:"required" example:"p1"`
} // @name AddItemRequest

// UpdateQuantityRequest represents the JSON request body for setting a line
// item's quantity. Zero is a valid value and removes the line item, so the
// field is a pointer to distinguish zero from absent.
//
// @Description Request to set the quantity of a cart line item
// @Example {"quantity": 5}
type UpdateQuantityRequest struct {
	// Quantity is the requested quantity. Values above stock are clamped;
	// zero or negative values remove the line item.
	Quantity *int `json:"quantity" binding:"required" example:"5"`
} // @name UpdateQuantityRequest

// ApplyCouponRequest represents the JSON request body for applying a coupon.
//
// @Description Request to apply a coupon to the cart
// @Example {"code": "PERCENT10"}
type ApplyCouponRequest struct {
	// Code is the coupon code to apply.
	Code string `json:"code" binding:"required" example:"PERCENT10"`
} // @name ApplyCouponRequest

// SaveProductRequest represents the JSON request body for creating or
// replacing a catalog product.
//
// @Description Request to create or replace a catalog product
// @Example {"id": "p4", "name": "Product 4", "price": 15000, "stock": 30, "discounts": [{"quantity": 10, "rate": 0.1}]}
type SaveProductRequest struct {
	// ID is the product identifier.
	ID string `json:"id" binding:"required" example:"p4"`
	// Name is the display name.
	Name string `json:"name" binding:"required" example:"Product 4"`
	// Price is the unit price. Must be non-negative.
	Price float64 `json:"price" binding:"gte=0" example:"15000"`
	// Stock is the available stock. Must be non-negative.
	Stock int `json:"stock" binding:"gte=0" example:"30"`
	// Discounts is the list of volume discount tiers.
	Discounts []DiscountTierRequest `json:"discounts,omitempty"`
} // @name SaveProductRequest

// DiscountTierRequest is one volume discount tier in a product request.
type DiscountTierRequest struct {
	// Quantity is the minimum quantity to qualify for the tier.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"10"`
	// Rate is the fractional discount rate, in [0,1).
	Rate float64 `json:"rate" binding:"gte=0,lt=1" example:"0.1"`
} // @name DiscountTierRequest

// CreateCouponRequest represents the JSON request body for creating a coupon.
//
// @Description Request to create a coupon
// @Example {"name": "10% off", "code": "PERCENT10", "discount_type": "percentage", "discount_value": 10}
type CreateCouponRequest struct {
	// Name is the human-readable coupon name.
	Name string `json:"name" binding:"required" example:"10% off"`
	// Code is the unique coupon code.
	Code string `json:"code" binding:"required" example:"PERCENT10"`
	// DiscountType is "amount" or "percentage".
	DiscountType string `json:"discount_type" binding:"required,oneof=amount percentage" example:"percentage"`
	// DiscountValue is the won amount or the percentage, per DiscountType.
	DiscountValue float64 `json:"discount_value" binding:"gte=0" example:"10"`
} // @name CreateCouponRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the add-item request.
func (r *AddItemRequest) Validate() error {
	if r.ProductID == "" {
		return &ValidationError{Field: "product_id", Message: "is required"}
	}
	return nil
}

// Validate performs custom validation on the update-quantity request.
func (r *UpdateQuantityRequest) Validate() error {
	if r.Quantity == nil {
		return &ValidationError{Field: "quantity", Message: "is required"}
	}
	return nil
}

// Validate performs custom validation on the apply-coupon request.
func (r *ApplyCouponRequest) Validate() error {
	if r.Code == "" {
		return &ValidationError{Field: "code", Message: "is required"}
	}
	return nil
}
