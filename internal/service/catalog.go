package service

import (
	"context"
	"errors"
	"sync"

	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/metrics"
	"github.com/yujinkim126/cart-service/internal/repository"
)

var (
	// ErrProductNotFound is returned when a product ID is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct is returned when a product fails validation.
	ErrInvalidProduct = errors.New("invalid product")
)

// DefaultProducts is the seed catalog used when no product repository is
// configured, and the initial data loaded into an empty database.
var DefaultProducts = []model.Product{
	{
		ID:    "p1",
		Name:  "Product 1",
		Price: 10000,
		Stock: 20,
		Discounts: []model.DiscountTier{
			{Quantity: 10, Rate: 0.1},
			{Quantity: 20, Rate: 0.2},
		},
	},
	{
		ID:    "p2",
		Name:  "Product 2",
		Price: 20000,
		Stock: 20,
		Discounts: []model.DiscountTier{
			{Quantity: 10, Rate: 0.15},
		},
	},
	{
		ID:    "p3",
		Name:  "Product 3",
		Price: 30000,
		Stock: 20,
		Discounts: []model.DiscountTier{
			{Quantity: 10, Rate: 0.2},
		},
	},
}

// CatalogService provides product catalog operations. Products are
// reference data: the cart core reads them and never mutates them.
type CatalogService interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	SaveProduct(ctx context.Context, product model.Product) error
}

// CatalogServiceImpl implements CatalogService. When a repository is
// configured it is the source of truth; otherwise products are served from
// an in-memory copy of the seed catalog. Repository reads that come back
// empty because the circuit breaker is open fall back to the seed copy, so
// catalog reads keep working while the database is down.
type CatalogServiceImpl struct {
	repo repository.ProductRepositoryInterface

	mu    sync.RWMutex
	byID  map[string]model.Product
	order []string
}

// NewCatalogService creates a catalog service. A nil repository enables the
// in-memory mode seeded with the given products.
func NewCatalogService(repo repository.ProductRepositoryInterface, seed []model.Product) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		repo: repo,
		byID: make(map[string]model.Product, len(seed)),
	}
	for _, p := range seed {
		if _, exists := s.byID[p.ID]; !exists {
			s.order = append(s.order, p.ID)
		}
		s.byID[p.ID] = p
	}
	return s
}

// GetProduct returns the product with the given ID.
func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if s.repo != nil {
		product, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product != nil {
			return product, nil
		}
		metrics.CatalogFallbacksTotal.Inc()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// ListProducts returns all catalog products in insertion order.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	if s.repo != nil {
		products, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if products != nil {
			return products, nil
		}
		metrics.CatalogFallbacksTotal.Inc()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.byID[id])
	}
	return products, nil
}

// SaveProduct creates or replaces a catalog product.
func (s *CatalogServiceImpl) SaveProduct(ctx context.Context, product model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	if s.repo != nil {
		return s.repo.Upsert(ctx, product)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[product.ID]; !exists {
		s.order = append(s.order, product.ID)
	}
	s.byID[product.ID] = product
	return nil
}

// validateProduct checks the data-integrity preconditions the pricing
// engine assumes: non-negative price and stock, tier rates in [0,1).
func validateProduct(p model.Product) error {
	switch {
	case p.ID == "":
		return errors.Join(ErrInvalidProduct, errors.New("id is required"))
	case p.Price < 0:
		return errors.Join(ErrInvalidProduct, errors.New("price must be non-negative"))
	case p.Stock < 0:
		return errors.Join(ErrInvalidProduct, errors.New("stock must be non-negative"))
	}
	for _, tier := range p.Discounts {
		if tier.Rate < 0 || tier.Rate >= 1 {
			return errors.Join(ErrInvalidProduct, errors.New("discount rate must be in [0,1)"))
		}
	}
	return nil
}
