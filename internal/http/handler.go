package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yujinkim126/cart-service/internal/domain/dto"
	"github.com/yujinkim126/cart-service/internal/i18n"
	"github.com/yujinkim126/cart-service/internal/metrics"
	"github.com/yujinkim126/cart-service/internal/service"
)

// Handler provides HTTP handlers for cart routes.
type Handler struct {
	carts service.CartService
}

// NewHandler creates a new Handler instance.
func NewHandler(carts service.CartService) *Handler {
	return &Handler{
		carts: carts,
	}
}

// cartError maps a cart service error to an HTTP status and message key.
func cartError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		return http.StatusNotFound, i18n.ErrKeyCartNotFound
	case errors.Is(err, service.ErrProductNotFound):
		return http.StatusNotFound, i18n.ErrKeyProductNotFound
	case errors.Is(err, service.ErrCouponNotFound):
		return http.StatusNotFound, i18n.ErrKeyCouponNotFound
	case errors.Is(err, service.ErrUnknownDiscountType):
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// CreateCart handles POST /api/carts requests.
//
// @Summary      Create a cart
// @Description  Creates a new empty cart and returns it with its generated ID.
// @Tags         Carts
// @Produce      json
// @Success      201 {object} dto.SuccessResponse "Created cart"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts [post]
func (h *Handler) CreateCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.Create(c.Request.Context())
	if err != nil {
		metrics.RecordCartMutation("create", "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordCartMutation("create", "success")
	builder.SuccessCreated(cart)
}

// GetCart handles GET /api/carts/:cartID requests.
//
// @Summary      Get a cart
// @Description  Returns the current snapshot of a cart, including its line items and selected coupon.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Router       /api/carts/{cartID} [get]
func (h *Handler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		status, key := cartError(err)
		builder.Error(status, key, err)
		return
	}

	builder.SuccessOK(cart)
}

// DeleteCart handles DELETE /api/carts/:cartID requests.
//
// @Summary      Delete a cart
// @Description  Discards a cart and all of its state.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Router       /api/carts/{cartID} [delete]
func (h *Handler) DeleteCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.carts.Delete(c.Request.Context(), c.Param("cartID")); err != nil {
		status, key := cartError(err)
		metrics.RecordCartMutation("delete", "error")
		builder.Error(status, key, err)
		return
	}

	metrics.RecordCartMutation("delete", "success")
	builder.SuccessOK(gin.H{"deleted": true})
}

// AddItem handles POST /api/carts/:cartID/items requests.
//
// @Summary      Add a product to a cart
// @Description  Adds one unit of the product to the cart. Adding an already-present product increments its quantity, clamped to the available stock. Out-of-stock products are not added.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        cartID path string true "Cart ID"
// @Param        request body dto.AddItemRequest true "Product to add"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Cart or product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{cartID}/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), c.Param("cartID"), req.ProductID)
	if err != nil {
		status, key := cartError(err)
		metrics.RecordCartMutation("add_item", "error")
		builder.Error(status, key, err)
		return
	}

	metrics.RecordCartMutation("add_item", "success")
	builder.SuccessOK(cart)
}

// RemoveItem handles DELETE /api/carts/:cartID/items/:productID requests.
//
// @Summary      Remove a product from a cart
// @Description  Removes the product's line item from the cart. Removing an absent product is a no-op.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart ID"
// @Param        productID path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Router       /api/carts/{cartID}/items/{productID} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.RemoveItem(c.Request.Context(), c.Param("cartID"), c.Param("productID"))
	if err != nil {
		status, key := cartError(err)
		metrics.RecordCartMutation("remove_item", "error")
		builder.Error(status, key, err)
		return
	}

	metrics.RecordCartMutation("remove_item", "success")
	builder.SuccessOK(cart)
}

// UpdateItemQuantity handles PUT /api/carts/:cartID/items/:productID requests.
//
// @Summary      Set a line item quantity
// @Description  Sets the quantity for the product's line item. Quantities above stock are clamped to stock; zero or negative quantities remove the line item.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        cartID path string true "Cart ID"
// @Param        productID path string true "Product ID"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Router       /api/carts/{cartID}/items/{productID} [put]
func (h *Handler) UpdateItemQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.carts.UpdateItemQuantity(c.Request.Context(), c.Param("cartID"), c.Param("productID"), *req.Quantity)
	if err != nil {
		status, key := cartError(err)
		metrics.RecordCartMutation("update_quantity", "error")
		builder.Error(status, key, err)
		return
	}

	metrics.RecordCartMutation("update_quantity", "success")
	builder.SuccessOK(cart)
}

// ApplyCoupon handles PUT /api/carts/:cartID/coupon requests.
//
// @Summary      Apply a coupon
// @Description  Selects a coupon for the cart by code, replacing any previously selected coupon.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        cartID path string true "Cart ID"
// @Param        request body dto.ApplyCouponRequest true "Coupon code"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Cart or coupon not found"
// @Router       /api/carts/{cartID}/coupon [put]
func (h *Handler) ApplyCoupon(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ApplyCouponRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.carts.ApplyCoupon(c.Request.Context(), c.Param("cartID"), req.Code)
	if err != nil {
		status, key := cartError(err)
		metrics.RecordCartMutation("apply_coupon", "error")
		builder.Error(status, key, err)
		return
	}

	metrics.RecordCartMutation("apply_coupon", "success")
	builder.SuccessOK(cart)
}

// RemoveCoupon handles DELETE /api/carts/:cartID/coupon requests.
//
// @Summary      Remove the selected coupon
// @Description  Clears the cart's selected coupon. Totals fall back to item-level discounts only.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Router       /api/carts/{cartID}/coupon [delete]
func (h *Handler) RemoveCoupon(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.RemoveCoupon(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		status, key := cartError(err)
		metrics.RecordCartMutation("remove_coupon", "error")
		builder.Error(status, key, err)
		return
	}

	metrics.RecordCartMutation("remove_coupon", "success")
	builder.SuccessOK(cart)
}

// GetTotals handles GET /api/carts/:cartID/totals requests.
//
// @Summary      Calculate cart totals
// @Description  Computes the cart's totals: the pre-discount sum, the payable total after item-level volume discounts and the selected coupon, and the total discount amount. Amounts are won, rounded half-up.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse "Cart totals"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{cartID}/totals [get]
func (h *Handler) GetTotals(c *gin.Context) {
	builder := NewResponseBuilder(c)
	start := time.Now()

	totals, err := h.carts.Totals(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		status, key := cartError(err)
		metrics.RecordTotalsCalculation(time.Since(start), "error")
		builder.Error(status, key, err)
		return
	}

	metrics.RecordTotalsCalculation(time.Since(start), "success")
	builder.SuccessOK(totals)
}
