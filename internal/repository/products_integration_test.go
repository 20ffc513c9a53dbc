//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/repository"
	"github.com/yujinkim126/cart-service/internal/testutil"
)

func newTestDB(t *testing.T) *repository.MongoDB {
	t.Helper()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	return db
}

func sampleProducts() []model.Product {
	return []model.Product{
		{
			ID:    "p1",
			Name:  "Product 1",
			Price: 10000,
			Stock: 20,
			Discounts: []model.DiscountTier{
				{Quantity: 10, Rate: 0.1},
			},
		},
		{ID: "p2", Name: "Product 2", Price: 20000, Stock: 10},
	}
}

func TestProductRepository_SeedAndList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(newTestDB(t))

	require.NoError(t, repo.SeedIfEmpty(ctx, sampleProducts()))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
	assert.Equal(t, 0.1, products[0].Discounts[0].Rate)

	// A second seed against a populated collection is a no-op.
	require.NoError(t, repo.SeedIfEmpty(ctx, sampleProducts()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestProductRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(newTestDB(t))
	require.NoError(t, repo.SeedIfEmpty(ctx, sampleProducts()))

	product, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Product 1", product.Name)
	assert.Equal(t, 20, product.Stock)

	missing, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(newTestDB(t))

	product := model.Product{ID: "p9", Name: "Product 9", Price: 5000, Stock: 3}
	require.NoError(t, repo.Upsert(ctx, product))

	product.Stock = 7
	require.NoError(t, repo.Upsert(ctx, product))

	found, err := repo.FindByID(ctx, "p9")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 7, found.Stock)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
