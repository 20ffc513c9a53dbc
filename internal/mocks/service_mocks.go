// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yujinkim126/cart-service/internal/domain/dto"
	"github.com/yujinkim126/cart-service/internal/domain/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, username, password, name)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Create(ctx context.Context) (model.Cart, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) Get(ctx context.Context, cartID string) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) Delete(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *MockCartService) AddItem(ctx context.Context, cartID, productID string) (model.Cart, error) {
	args := m.Called(ctx, cartID, productID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, cartID, productID string) (model.Cart, error) {
	args := m.Called(ctx, cartID, productID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) (model.Cart, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) ApplyCoupon(ctx context.Context, cartID, couponCode string) (model.Cart, error) {
	args := m.Called(ctx, cartID, couponCode)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) RemoveCoupon(ctx context.Context, cartID string) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) Totals(ctx context.Context, cartID string) (model.CartTotals, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(model.CartTotals), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) SaveProduct(ctx context.Context, product model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

type MockCouponService struct {
	mock.Mock
}

func (m *MockCouponService) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *MockCouponService) List(ctx context.Context) ([]model.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

func (m *MockCouponService) Create(ctx context.Context, coupon model.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
