// Package app provides service initialization.
package app

import (
	"github.com/yujinkim126/cart-service/internal/repository"
	"github.com/yujinkim126/cart-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Catalog service.CatalogService
	Coupons service.CouponService
	Carts   service.CartService
}

// InitializeServices initializes the business logic services. When
// dbComponents is nil the catalog and coupon services serve their built-in
// seed data only.
func InitializeServices(dbComponents *DatabaseComponents) *ServiceComponents {
	var productRepo repository.ProductRepositoryInterface
	var couponRepo repository.CouponRepositoryInterface
	if dbComponents != nil {
		productRepo = dbComponents.ProductRepo
		couponRepo = dbComponents.CouponRepo
	}

	catalog := service.NewCatalogService(productRepo, service.DefaultProducts)
	coupons := service.NewCouponService(couponRepo, service.DefaultCoupons)
	carts := service.NewCartService(catalog, coupons, service.NewCartMutatorService(), service.NewPricingService())

	return &ServiceComponents{
		Catalog: catalog,
		Coupons: coupons,
		Carts:   carts,
	}
}
