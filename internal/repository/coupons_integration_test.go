//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/repository"
)

func sampleCoupons() []model.Coupon {
	return []model.Coupon{
		{Name: "5000 off", Code: "AMOUNT5000", DiscountType: model.DiscountTypeAmount, DiscountValue: 5000},
		{Name: "10% off", Code: "PERCENT10", DiscountType: model.DiscountTypePercentage, DiscountValue: 10},
	}
}

func TestCouponRepository_SeedAndList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCouponRepository(newTestDB(t))

	require.NoError(t, repo.SeedIfEmpty(ctx, sampleCoupons()))

	coupons, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, "AMOUNT5000", coupons[0].Code)
	assert.Equal(t, "PERCENT10", coupons[1].Code)

	require.NoError(t, repo.SeedIfEmpty(ctx, sampleCoupons()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCouponRepository_FindByCode(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCouponRepository(newTestDB(t))
	require.NoError(t, repo.SeedIfEmpty(ctx, sampleCoupons()))

	coupon, err := repo.FindByCode(ctx, "PERCENT10")
	require.NoError(t, err)
	require.NotNil(t, coupon)
	assert.Equal(t, model.DiscountTypePercentage, coupon.DiscountType)
	assert.Equal(t, float64(10), coupon.DiscountValue)

	missing, err := repo.FindByCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCouponRepository_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCouponRepository(newTestDB(t))

	coupon := model.Coupon{Name: "Welcome", Code: "WELCOME", DiscountType: model.DiscountTypeAmount, DiscountValue: 1000}
	require.NoError(t, repo.Create(ctx, coupon))

	err := repo.Create(ctx, coupon)
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}
