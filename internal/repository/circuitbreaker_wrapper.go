// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/yujinkim126/cart-service/internal/circuitbreaker"
	"github.com/yujinkim126/cart-service/internal/domain/model"
)

// ProductRepositoryWithCircuitBreaker wraps ProductRepository with circuit
// breaker protection. Reads return nil when the circuit is open so callers
// fall back to the in-memory catalog defaults.
type ProductRepositoryWithCircuitBreaker struct {
	repo           *ProductRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductRepositoryWithCircuitBreaker(repo *ProductRepository, cb *circuitbreaker.CircuitBreaker) *ProductRepositoryWithCircuitBreaker {
	return &ProductRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByID returns a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - fall back to the seeded catalog
		return nil, nil
	}
	return result, err
}

// List returns all products with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Upsert creates or replaces a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Upsert(ctx context.Context, product model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, product)
	})
}

// Count returns the number of products with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// SeedIfEmpty seeds catalog defaults with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) SeedIfEmpty(ctx context.Context, products []model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SeedIfEmpty(ctx, products)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// CouponRepositoryWithCircuitBreaker wraps CouponRepository with circuit
// breaker protection. Reads return nil when the circuit is open so callers
// fall back to the in-memory coupon defaults.
type CouponRepositoryWithCircuitBreaker struct {
	repo           *CouponRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCouponRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCouponRepositoryWithCircuitBreaker(repo *CouponRepository, cb *circuitbreaker.CircuitBreaker) *CouponRepositoryWithCircuitBreaker {
	return &CouponRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByCode returns a coupon with circuit breaker protection.
func (r *CouponRepositoryWithCircuitBreaker) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var result *model.Coupon
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByCode(ctx, code)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// List returns all coupons with circuit breaker protection.
func (r *CouponRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Coupon, error) {
	var result []model.Coupon
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create inserts a coupon with circuit breaker protection.
func (r *CouponRepositoryWithCircuitBreaker) Create(ctx context.Context, coupon model.Coupon) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, coupon)
	})
}

// Count returns the number of coupons with circuit breaker protection.
func (r *CouponRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// SeedIfEmpty seeds default coupons with circuit breaker protection.
func (r *CouponRepositoryWithCircuitBreaker) SeedIfEmpty(ctx context.Context, coupons []model.Coupon) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SeedIfEmpty(ctx, coupons)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CouponRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
