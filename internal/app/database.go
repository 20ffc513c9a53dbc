// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yujinkim126/cart-service/config"
	"github.com/yujinkim126/cart-service/internal/circuitbreaker"
	"github.com/yujinkim126/cart-service/internal/repository"
	"github.com/yujinkim126/cart-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	ProductRepo           repository.ProductRepositoryInterface
	CouponRepo            repository.CouponRepositoryInterface
	UserRepo              repository.UserRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	CouponsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates required
// repositories and services. Returns nil if the database is disabled or the
// connection fails; the service then runs on in-memory seed data.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with seed data")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
			Name:             name,
		})
	}

	catalogCB := newBreaker("mongodb-products")
	couponsCB := newBreaker("mongodb-coupons")
	logsCB := newBreaker("mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	loggingService := service.NewLoggingService(logsRepo)

	productRepo := repository.NewProductRepositoryWithCircuitBreaker(repository.NewProductRepository(db), catalogCB)
	couponRepo := repository.NewCouponRepositoryWithCircuitBreaker(repository.NewCouponRepository(db), couponsCB)
	userRepo := repository.NewUserRepository(db)

	if err := seedCatalog(productRepo, couponRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed catalog data")
	}

	return &DatabaseComponents{
		DB:                    db,
		ProductRepo:           productRepo,
		CouponRepo:            couponRepo,
		UserRepo:              userRepo,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		CouponsCircuitBreaker: couponsCB,
		LogsCircuitBreaker:    logsCB,
	}
}

// mongoChecker adapts the MongoDB connection to the health checker interface.
type mongoChecker struct {
	components *DatabaseComponents
}

func (c mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.components.DB.HealthCheck(ctx)
}

// seedCatalog inserts the default products and coupons when their
// collections are empty.
func seedCatalog(products repository.ProductRepositoryInterface, coupons repository.CouponRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := products.SeedIfEmpty(ctx, service.DefaultProducts); err != nil {
		return err
	}
	if err := coupons.SeedIfEmpty(ctx, service.DefaultCoupons); err != nil {
		return err
	}

	log.Info().
		Int("products", len(service.DefaultProducts)).
		Int("coupons", len(service.DefaultCoupons)).
		Msg("Catalog seed data ensured")
	return nil
}
