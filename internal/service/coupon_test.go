//go:build !integration

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"

	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/mocks"
	"github.com/yujinkim126/cart-service/internal/repository"
)

func TestCouponService_GetByCode(t *testing.T) {
	svc := NewCouponService(nil, DefaultCoupons)

	coupon, err := svc.GetByCode(context.Background(), "PERCENT10")
	require.NoError(t, err)
	assert.Equal(t, model.DiscountTypePercentage, coupon.DiscountType)
	assert.Equal(t, 10.0, coupon.DiscountValue)

	_, err = svc.GetByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestCouponService_List_PreservesSeedOrder(t *testing.T) {
	svc := NewCouponService(nil, DefaultCoupons)

	coupons, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, "AMOUNT5000", coupons[0].Code)
	assert.Equal(t, "PERCENT10", coupons[1].Code)
}

func TestCouponService_Create(t *testing.T) {
	svc := NewCouponService(nil, DefaultCoupons)

	t.Run("adds a new coupon", func(t *testing.T) {
		err := svc.Create(context.Background(), model.Coupon{
			Name:          "20,000 won off",
			Code:          "AMOUNT20000",
			DiscountType:  model.DiscountTypeAmount,
			DiscountValue: 20000,
		})
		require.NoError(t, err)

		coupon, err := svc.GetByCode(context.Background(), "AMOUNT20000")
		require.NoError(t, err)
		assert.Equal(t, 20000.0, coupon.DiscountValue)
	})

	t.Run("rejects duplicate codes", func(t *testing.T) {
		err := svc.Create(context.Background(), model.Coupon{
			Name:          "again",
			Code:          "PERCENT10",
			DiscountType:  model.DiscountTypePercentage,
			DiscountValue: 15,
		})
		assert.ErrorIs(t, err, ErrCouponExists)
	})
}

func TestCouponService_RepositoryBacked(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate key maps to coupon exists", func(t *testing.T) {
		repo := new(mocks.MockCouponRepositoryInterface)
		repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey)

		svc := NewCouponService(repo, DefaultCoupons)

		err := svc.Create(ctx, model.Coupon{Code: "PERCENT10", DiscountType: model.DiscountTypePercentage, DiscountValue: 10})
		assert.ErrorIs(t, err, ErrCouponExists)
	})

	t.Run("empty repository read falls back to seed copy", func(t *testing.T) {
		repo := new(mocks.MockCouponRepositoryInterface)
		repo.On("FindByCode", mock.Anything, "PERCENT10").Return(nil, nil)
		repo.On("List", mock.Anything).Return(nil, nil)

		svc := NewCouponService(repo, DefaultCoupons)

		coupon, err := svc.GetByCode(ctx, "PERCENT10")
		require.NoError(t, err)
		assert.Equal(t, model.DiscountTypePercentage, coupon.DiscountType)

		coupons, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, coupons, 2)
	})
}

func TestValidateCoupon(t *testing.T) {
	tests := []struct {
		name    string
		coupon  model.Coupon
		wantErr error
	}{
		{
			name:   "valid amount coupon",
			coupon: model.Coupon{Code: "A", DiscountType: model.DiscountTypeAmount, DiscountValue: 1000},
		},
		{
			name:   "valid percentage coupon",
			coupon: model.Coupon{Code: "P", DiscountType: model.DiscountTypePercentage, DiscountValue: 100},
		},
		{
			name:    "missing code",
			coupon:  model.Coupon{DiscountType: model.DiscountTypeAmount, DiscountValue: 1000},
			wantErr: ErrInvalidCoupon,
		},
		{
			name:    "unknown discount type",
			coupon:  model.Coupon{Code: "X", DiscountType: "bogo", DiscountValue: 1},
			wantErr: ErrUnknownDiscountType,
		},
		{
			name:    "negative amount",
			coupon:  model.Coupon{Code: "A", DiscountType: model.DiscountTypeAmount, DiscountValue: -1},
			wantErr: ErrInvalidCoupon,
		},
		{
			name:    "percentage above 100",
			coupon:  model.Coupon{Code: "P", DiscountType: model.DiscountTypePercentage, DiscountValue: 101},
			wantErr: ErrInvalidCoupon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoupon(tt.coupon)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
