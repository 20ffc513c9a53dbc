// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yujinkim126/cart-service/config"
	"github.com/yujinkim126/cart-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and services).
	// Nil when the database is disabled; services fall back to seed data.
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services
	serviceComponents := InitializeServices(dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
