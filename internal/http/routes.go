package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yujinkim126/cart-service/internal/middleware"
	"github.com/yujinkim126/cart-service/internal/service"
)

// CartRoutes handles cart and catalog route registration.
type CartRoutes struct {
	handler *Handler
	catalog *CatalogHandler
}

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(handler *Handler, catalogService service.CatalogService, couponService service.CouponService) *CartRoutes {
	return &CartRoutes{
		handler: handler,
		catalog: NewCatalogHandler(catalogService, couponService),
	}
}

// RegisterPublicRoutes registers the cart and read-only catalog routes.
func (r *CartRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/carts")
	{
		carts.POST("", r.handler.CreateCart)
		carts.GET("/:cartID", r.handler.GetCart)
		carts.DELETE("/:cartID", r.handler.DeleteCart)
		carts.POST("/:cartID/items", r.handler.AddItem)
		carts.PUT("/:cartID/items/:productID", r.handler.UpdateItemQuantity)
		carts.DELETE("/:cartID/items/:productID", r.handler.RemoveItem)
		carts.PUT("/:cartID/coupon", r.handler.ApplyCoupon)
		carts.DELETE("/:cartID/coupon", r.handler.RemoveCoupon)
		carts.GET("/:cartID/totals", r.handler.GetTotals)
	}

	rg.GET("/products", r.catalog.ListProducts)
	rg.GET("/products/:productID", r.catalog.GetProduct)
	rg.GET("/coupons", r.catalog.ListCoupons)
}

// RegisterAdminRoutes registers catalog management routes on a JWT-protected
// group. The routes additionally require the admin claim.
func (r *CartRoutes) RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("")
	admin.Use(middleware.AdminOnly())

	admin.POST("/products", r.catalog.SaveProduct)
	admin.PUT("/products", r.catalog.SaveProduct)
	admin.POST("/coupons", r.catalog.CreateCoupon)
}
