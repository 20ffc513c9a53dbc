package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yujinkim126/cart-service/internal/domain/dto"
	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/i18n"
	"github.com/yujinkim126/cart-service/internal/service"
)

// CatalogHandler provides HTTP handlers for product and coupon routes.
type CatalogHandler struct {
	catalog service.CatalogService
	coupons service.CouponService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService, coupons service.CouponService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		coupons: coupons,
	}
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List products
// @Description  Returns the product catalog in its seeded order, including stock and volume discount tiers.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Product list"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(products)
}

// GetProduct handles GET /api/products/:productID requests.
//
// @Summary      Get a product
// @Description  Returns a single product by ID.
// @Tags         Catalog
// @Produce      json
// @Param        productID path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/products/{productID} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(product)
}

// SaveProduct handles PUT /api/products requests.
//
// @Summary      Create or replace a product
// @Description  Upserts a product in the catalog by its ID. Requires an admin token.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SaveProductRequest true "Product definition"
// @Success      200 {object} dto.SuccessResponse "Saved product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Router       /api/products [put]
func (h *CatalogHandler) SaveProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SaveProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product := model.Product{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	}
	for _, tier := range req.Discounts {
		product.Discounts = append(product.Discounts, model.DiscountTier{
			Quantity: tier.Quantity,
			Rate:     tier.Rate,
		})
	}

	if err := h.catalog.SaveProduct(c.Request.Context(), product); err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(product)
}

// ListCoupons handles GET /api/coupons requests.
//
// @Summary      List coupons
// @Description  Returns the available coupons in their seeded order.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Coupon list"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/coupons [get]
func (h *CatalogHandler) ListCoupons(c *gin.Context) {
	builder := NewResponseBuilder(c)

	coupons, err := h.coupons.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(coupons)
}

// CreateCoupon handles POST /api/coupons requests.
//
// @Summary      Create a coupon
// @Description  Registers a new coupon. Codes are unique; re-registering an existing code fails. Requires an admin token.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCouponRequest true "Coupon definition"
// @Success      201 {object} dto.SuccessResponse "Created coupon"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      409 {object} dto.ErrorResponse "Coupon code already exists"
// @Router       /api/coupons [post]
func (h *CatalogHandler) CreateCoupon(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateCouponRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	coupon := model.Coupon{
		Name:          req.Name,
		Code:          req.Code,
		DiscountType:  model.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
	}

	if err := h.coupons.Create(c.Request.Context(), coupon); err != nil {
		switch {
		case errors.Is(err, service.ErrCouponExists):
			builder.Error(http.StatusConflict, i18n.ErrKeyCouponExists, err)
		case errors.Is(err, service.ErrInvalidCoupon):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessCreated(coupon)
}
