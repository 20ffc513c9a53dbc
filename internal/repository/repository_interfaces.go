// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yujinkim126/cart-service/internal/domain/model"
)

// ProductRepositoryInterface defines product catalog repository operations.
// A missing product is (nil, nil), not an error.
type ProductRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Upsert(ctx context.Context, product model.Product) error
	Count(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, products []model.Product) error
}

// CouponRepositoryInterface defines coupon repository operations.
// A missing coupon is (nil, nil), not an error.
type CouponRepositoryInterface interface {
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Create(ctx context.Context, coupon model.Coupon) error
	Count(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, coupons []model.Coupon) error
}

// UserRepositoryInterface defines user repository operations.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

// LogsRepositoryInterface defines request-log repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
}
