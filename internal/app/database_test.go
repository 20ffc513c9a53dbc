//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yujinkim126/cart-service/config"
	"github.com/yujinkim126/cart-service/internal/mocks"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
}

func TestSeedCatalog(t *testing.T) {
	t.Run("seeds both collections", func(t *testing.T) {
		mockProducts := new(mocks.MockProductRepositoryInterface)
		mockProducts.On("SeedIfEmpty", mock.Anything, mock.Anything).Return(nil).Once()

		mockCoupons := new(mocks.MockCouponRepositoryInterface)
		mockCoupons.On("SeedIfEmpty", mock.Anything, mock.Anything).Return(nil).Once()

		err := seedCatalog(mockProducts, mockCoupons)

		assert.NoError(t, err)
		mockProducts.AssertExpectations(t)
		mockCoupons.AssertExpectations(t)
	})

	t.Run("propagates product seed failure", func(t *testing.T) {
		mockProducts := new(mocks.MockProductRepositoryInterface)
		mockProducts.On("SeedIfEmpty", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

		mockCoupons := new(mocks.MockCouponRepositoryInterface)

		err := seedCatalog(mockProducts, mockCoupons)

		assert.Error(t, err)
		mockCoupons.AssertNotCalled(t, "SeedIfEmpty")
	})
}
