// Package repository provides data access for coupons.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yujinkim126/cart-service/internal/domain/model"
)

// ErrDuplicateKey is returned when an insert collides with an existing
// document's unique key.
var ErrDuplicateKey = errors.New("duplicate key")

// CouponRepository implements CouponRepositoryInterface using MongoDB.
// The coupon code is the document _id.
type CouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a new coupon repository.
func NewCouponRepository(db *MongoDB) *CouponRepository {
	return &CouponRepository{
		collection: db.Coupons,
	}
}

// FindByCode returns the coupon with the given code, or nil when absent.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.collection.FindOne(ctx, bson.M{"_id": code}).Decode(&coupon)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// List returns all coupons ordered by code.
func (r *CouponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	coupons := make([]model.Coupon, 0)
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// Create inserts a new coupon. Returns ErrDuplicateKey when the code is taken.
func (r *CouponRepository) Create(ctx context.Context, coupon model.Coupon) error {
	_, err := r.collection.InsertOne(ctx, coupon)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// Count returns the number of coupons.
func (r *CouponRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// SeedIfEmpty inserts the given coupons when the collection has none.
func (r *CouponRepository) SeedIfEmpty(ctx context.Context, coupons []model.Coupon) error {
	count, err := r.Count(ctx)
	if err != nil || count > 0 || len(coupons) == 0 {
		return err
	}

	docs := make([]interface{}, len(coupons))
	for i, c := range coupons {
		docs[i] = c
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
