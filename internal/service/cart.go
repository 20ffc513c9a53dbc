package service

import (
	"github.com/yujinkim126/cart-service/internal/domain/model"
)

// CartMutator defines the pure cart transition functions. Every operation
// returns a brand-new item slice and never mutates its input; callers own
// swapping the new value in as the current cart.
//
// A line item has exactly two states: present with quantity >= 1, or
// absent. SetQuantity with a non-positive effective quantity is the only
// present-to-absent transition.
type CartMutator interface {
	AddProduct(items []model.CartItem, product model.Product) []model.CartItem
	RemoveProduct(items []model.CartItem, productID string) []model.CartItem
	SetQuantity(items []model.CartItem, productID string, requested int) []model.CartItem
}

// CartMutatorService implements CartMutator with stock clamping on both
// AddProduct and SetQuantity, so a line item can never exceed its
// product's stock through either path.
type CartMutatorService struct{}

// NewCartMutatorService creates a new CartMutatorService.
func NewCartMutatorService() *CartMutatorService {
	return &CartMutatorService{}
}

// AddProduct increments the quantity of an existing line item by 1, or
// appends a new line item with quantity 1 at the end. The resulting
// quantity is clamped to the product's stock; adding a product whose stock
// is exhausted leaves the cart unchanged, and adding one with zero stock
// never creates a line item.
func (s *CartMutatorService) AddProduct(items []model.CartItem, product model.Product) []model.CartItem {
	for _, item := range items {
		if item.Product.ID == product.ID {
			return s.SetQuantity(items, product.ID, item.Quantity+1)
		}
	}

	if product.Stock < 1 {
		return cloneItems(items)
	}

	next := make([]model.CartItem, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, model.CartItem{Product: product, Quantity: 1})
	return next
}

// RemoveProduct returns a cart without the line item for productID.
// Removing an absent product is a no-op returning an equivalent cart.
func (s *CartMutatorService) RemoveProduct(items []model.CartItem, productID string) []model.CartItem {
	next := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// SetQuantity sets the quantity of the line item for productID to
// min(requested, stock). A non-positive effective quantity removes the
// line item entirely; other items keep their relative order. An absent
// productID is a no-op.
func (s *CartMutatorService) SetQuantity(items []model.CartItem, productID string, requested int) []model.CartItem {
	next := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			next = append(next, item)
			continue
		}

		effective := requested
		if effective > item.Product.Stock {
			effective = item.Product.Stock
		}
		if effective <= 0 {
			continue
		}

		item.Quantity = effective
		next = append(next, item)
	}
	return next
}

// cloneItems returns a copy of the item slice so no-op transitions still
// hand back a value the caller owns.
func cloneItems(items []model.CartItem) []model.CartItem {
	next := make([]model.CartItem, len(items))
	copy(next, items)
	return next
}
