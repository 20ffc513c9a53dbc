// Package repository provides data access for the product catalog.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yujinkim126/cart-service/internal/domain/model"
)

// ProductRepository implements ProductRepositoryInterface using MongoDB.
// The product ID is the document _id.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{
		collection: db.Products,
	}
}

// FindByID returns the product with the given ID, or nil when absent.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns all catalog products ordered by ID.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Upsert creates or replaces a product document.
func (r *ProductRepository) Upsert(ctx context.Context, product model.Product) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product, opts)
	return err
}

// Count returns the number of catalog products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// SeedIfEmpty inserts the given products when the collection has none.
func (r *ProductRepository) SeedIfEmpty(ctx context.Context, products []model.Product) error {
	count, err := r.Count(ctx)
	if err != nil || count > 0 || len(products) == 0 {
		return err
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
