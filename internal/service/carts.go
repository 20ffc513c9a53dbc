package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/metrics"
)

// ErrCartNotFound is returned when a cart ID is unknown.
var ErrCartNotFound = errors.New("cart not found")

// CartService is the state container around the pure cart core. It owns the
// live carts and the selected coupon per cart, delegates every mutation to
// the CartMutator and every total to the Pricer, and applies each update as
// a whole-value replacement of the stored cart (last-applied-wins). Carts
// live in memory only.
type CartService interface {
	Create(ctx context.Context) (model.Cart, error)
	Get(ctx context.Context, cartID string) (model.Cart, error)
	Delete(ctx context.Context, cartID string) error
	AddItem(ctx context.Context, cartID, productID string) (model.Cart, error)
	RemoveItem(ctx context.Context, cartID, productID string) (model.Cart, error)
	UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) (model.Cart, error)
	ApplyCoupon(ctx context.Context, cartID, couponCode string) (model.Cart, error)
	RemoveCoupon(ctx context.Context, cartID string) (model.Cart, error)
	Totals(ctx context.Context, cartID string) (model.CartTotals, error)
}

// CartServiceImpl implements CartService with an in-memory cart store.
// The mutex serializes updates; the core itself needs no locking since
// every transition returns a new value.
type CartServiceImpl struct {
	catalog CatalogService
	coupons CouponService
	mutator CartMutator
	pricer  Pricer

	mu    sync.RWMutex
	carts map[string]model.Cart
}

// NewCartService creates a cart service backed by the given catalog and
// coupon services.
func NewCartService(catalog CatalogService, coupons CouponService, mutator CartMutator, pricer Pricer) *CartServiceImpl {
	return &CartServiceImpl{
		catalog: catalog,
		coupons: coupons,
		mutator: mutator,
		pricer:  pricer,
		carts:   make(map[string]model.Cart),
	}
}

// Create registers a new empty cart and returns it.
func (s *CartServiceImpl) Create(ctx context.Context) (model.Cart, error) {
	cart := model.EmptyCart(uuid.New().String())

	s.mu.Lock()
	s.carts[cart.ID] = cart
	metrics.SetActiveCarts(len(s.carts))
	s.mu.Unlock()

	return cart, nil
}

// Get returns the current snapshot of a cart.
func (s *CartServiceImpl) Get(ctx context.Context, cartID string) (model.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return model.Cart{}, ErrCartNotFound
	}
	return cart, nil
}

// Delete discards a cart. Deleting an unknown cart is an error.
func (s *CartServiceImpl) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[cartID]; !ok {
		return ErrCartNotFound
	}
	delete(s.carts, cartID)
	metrics.SetActiveCarts(len(s.carts))
	return nil
}

// AddItem adds one unit of the product to the cart.
func (s *CartServiceImpl) AddItem(ctx context.Context, cartID, productID string) (model.Cart, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return model.Cart{}, err
	}

	return s.replace(cartID, func(items []model.CartItem) []model.CartItem {
		return s.mutator.AddProduct(items, *product)
	})
}

// RemoveItem removes the product's line item from the cart.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, cartID, productID string) (model.Cart, error) {
	return s.replace(cartID, func(items []model.CartItem) []model.CartItem {
		return s.mutator.RemoveProduct(items, productID)
	})
}

// UpdateItemQuantity sets the quantity for the product's line item,
// clamped to stock; a non-positive quantity removes the item.
func (s *CartServiceImpl) UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) (model.Cart, error) {
	return s.replace(cartID, func(items []model.CartItem) []model.CartItem {
		return s.mutator.SetQuantity(items, productID, quantity)
	})
}

// ApplyCoupon selects a coupon for the cart, replacing any previous one.
// The coupon's discount type is validated here so the pricing engine only
// ever sees the two known variants.
func (s *CartServiceImpl) ApplyCoupon(ctx context.Context, cartID, couponCode string) (model.Cart, error) {
	coupon, err := s.coupons.GetByCode(ctx, couponCode)
	if err != nil {
		return model.Cart{}, err
	}
	if !coupon.DiscountType.Valid() {
		return model.Cart{}, ErrUnknownDiscountType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return model.Cart{}, ErrCartNotFound
	}

	cart.Coupon = coupon
	cart.UpdatedAt = time.Now()
	s.carts[cartID] = cart
	return cart, nil
}

// RemoveCoupon clears the cart's selected coupon.
func (s *CartServiceImpl) RemoveCoupon(ctx context.Context, cartID string) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return model.Cart{}, ErrCartNotFound
	}

	cart.Coupon = nil
	cart.UpdatedAt = time.Now()
	s.carts[cartID] = cart
	return cart, nil
}

// Totals computes the cart's totals with the selected coupon applied.
func (s *CartServiceImpl) Totals(ctx context.Context, cartID string) (model.CartTotals, error) {
	s.mu.RLock()
	cart, ok := s.carts[cartID]
	s.mu.RUnlock()

	if !ok {
		return model.CartTotals{}, ErrCartNotFound
	}

	return s.pricer.CartTotals(cart.Items, cart.Coupon)
}

// replace applies a pure item transition to the stored cart and swaps in
// the resulting snapshot as the new current value.
func (s *CartServiceImpl) replace(cartID string, transition func([]model.CartItem) []model.CartItem) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return model.Cart{}, ErrCartNotFound
	}

	cart.Items = transition(cart.Items)
	cart.UpdatedAt = time.Now()
	s.carts[cartID] = cart
	return cart, nil
}
