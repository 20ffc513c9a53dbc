// Package app provides router configuration.
package app

import (
	"github.com/yujinkim126/cart-service/config"
	"github.com/yujinkim126/cart-service/internal/http"
	"github.com/yujinkim126/cart-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(services.Carts)
	healthHandler := http.NewHealthHandler()

	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService

		healthHandler.RegisterChecker("mongodb", mongoChecker{dbComponents})
		healthHandler.RegisterCircuitBreaker("mongodb_products", dbComponents.CatalogCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_coupons", dbComponents.CouponsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	// JWT authentication needs a user store; without the database the API
	// runs in public mode (optionally behind API keys).
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		impl := service.NewAuthService(dbComponents.UserRepo, cfg.Auth)
		seedAdminUser(impl, cfg.Auth)
		authService = impl
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
		CatalogService: services.Catalog,
		CouponService:  services.Coupons,
		AuthService:    authService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
