// Package main is the entry point for the cart-service application.
//
// @title           Cart Service API
// @version         1.0.0
// @description     API for managing shopping carts with volume discounts and coupons.
//
//	Carts hold product line items clamped to stock, at most one coupon,
//	and expose a totals endpoint that applies volume tiers and the coupon.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/yujinkim126/cart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer ".
//
// @tag.name        Carts
// @tag.description Cart mutation and totals operations
//
// @tag.name        Catalog
// @tag.description Product and coupon catalog endpoints
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/yujinkim126/cart-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/yujinkim126/cart-service/config"
	"github.com/yujinkim126/cart-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
