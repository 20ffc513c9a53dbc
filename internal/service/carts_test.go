//go:build !integration

package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yujinkim126/cart-service/internal/domain/model"
)

func newTestCartService() *CartServiceImpl {
	catalog := NewCatalogService(nil, DefaultProducts)
	coupons := NewCouponService(nil, DefaultCoupons)
	return NewCartService(catalog, coupons, NewCartMutatorService(), NewPricingService())
}

func TestCartService_CreateAndGet(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.Coupon)

	got, err := svc.Get(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_Delete(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, cart.ID))
	_, err = svc.Get(ctx, cart.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, cart.ID), ErrCartNotFound)
}

func TestCartService_AddItem(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.Create(ctx)
	require.NoError(t, err)

	updated, err := svc.AddItem(ctx, cart.ID, "p1")
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 1, updated.Items[0].Quantity)

	updated, err = svc.AddItem(ctx, cart.ID, "p1")
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 2, updated.Items[0].Quantity)

	_, err = svc.AddItem(ctx, cart.ID, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.AddItem(ctx, "missing", "p1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.ID, "p1")
	require.NoError(t, err)

	updated, err := svc.UpdateItemQuantity(ctx, cart.ID, "p1", 15)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 15, updated.Items[0].Quantity)

	// Quantity above stock is clamped to stock (20 for the seed catalog).
	updated, err = svc.UpdateItemQuantity(ctx, cart.ID, "p1", 99)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Items[0].Quantity)

	// Zero evicts the line item.
	updated, err = svc.UpdateItemQuantity(ctx, cart.ID, "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, updated.Items)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.ID, "p1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.ID, "p2")
	require.NoError(t, err)

	updated, err := svc.RemoveItem(ctx, cart.ID, "p1")
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "p2", updated.Items[0].Product.ID)

	// Removing an absent product is a no-op, not an error.
	updated, err = svc.RemoveItem(ctx, cart.ID, "p1")
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)
}

func TestCartService_Coupons(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.Create(ctx)
	require.NoError(t, err)

	updated, err := svc.ApplyCoupon(ctx, cart.ID, "PERCENT10")
	require.NoError(t, err)
	require.NotNil(t, updated.Coupon)
	assert.Equal(t, "PERCENT10", updated.Coupon.Code)

	// Applying another coupon replaces the first.
	updated, err = svc.ApplyCoupon(ctx, cart.ID, "AMOUNT5000")
	require.NoError(t, err)
	require.NotNil(t, updated.Coupon)
	assert.Equal(t, "AMOUNT5000", updated.Coupon.Code)

	_, err = svc.ApplyCoupon(ctx, cart.ID, "NOPE")
	assert.ErrorIs(t, err, ErrCouponNotFound)

	updated, err = svc.RemoveCoupon(ctx, cart.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Coupon)
}

func TestCartService_Totals(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.Create(ctx)
	require.NoError(t, err)

	// Empty cart totals are all zero.
	totals, err := svc.Totals(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CartTotals{}, totals)

	_, err = svc.AddItem(ctx, cart.ID, "p1")
	require.NoError(t, err)
	_, err = svc.UpdateItemQuantity(ctx, cart.ID, "p1", 10)
	require.NoError(t, err)

	// 10 x 10,000 with the 10-unit tier's 10% off.
	totals, err = svc.Totals(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), totals.BeforeDiscount)
	assert.Equal(t, int64(90000), totals.AfterDiscount)
	assert.Equal(t, int64(10000), totals.DiscountAmount)

	// Percentage coupon applies on top of the tier discount.
	_, err = svc.ApplyCoupon(ctx, cart.ID, "PERCENT10")
	require.NoError(t, err)

	totals, err = svc.Totals(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), totals.BeforeDiscount)
	assert.Equal(t, int64(81000), totals.AfterDiscount)
	assert.Equal(t, int64(19000), totals.DiscountAmount)

	_, err = svc.Totals(ctx, "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_ConcurrentMutations(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.Create(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, cart.ID, "p1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 20, got.Items[0].Quantity)
}
