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
	// ErrCouponNotFound is returned when a coupon code is unknown.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponExists is returned when creating a coupon whose code is taken.
	ErrCouponExists = errors.New("coupon already exists")
	// ErrInvalidCoupon is returned when a coupon fails validation.
	ErrInvalidCoupon = errors.New("invalid coupon")
)

// DefaultCoupons is the seed coupon set used when no coupon repository is
// configured, and the initial data loaded into an empty database.
var DefaultCoupons = []model.Coupon{
	{
		Name:          "5,000 won off",
		Code:          "AMOUNT5000",
		DiscountType:  model.DiscountTypeAmount,
		DiscountValue: 5000,
	},
	{
		Name:          "10% off",
		Code:          "PERCENT10",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 10,
	},
}

// CouponService provides coupon catalog operations. Coupons are validated
// here, at the configuration boundary, so an ill-formed discount type can
// never reach the pricing engine.
type CouponService interface {
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Create(ctx context.Context, coupon model.Coupon) error
}

// CouponServiceImpl implements CouponService. When a repository is
// configured it is the source of truth; otherwise coupons are served from
// an in-memory copy of the seed set. Repository reads that come back empty
// because the circuit breaker is open fall back to the seed copy.
type CouponServiceImpl struct {
	repo repository.CouponRepositoryInterface

	mu     sync.RWMutex
	byCode map[string]model.Coupon
	order  []string
}

// NewCouponService creates a coupon service. A nil repository enables the
// in-memory mode seeded with the given coupons.
func NewCouponService(repo repository.CouponRepositoryInterface, seed []model.Coupon) *CouponServiceImpl {
	s := &CouponServiceImpl{
		repo:   repo,
		byCode: make(map[string]model.Coupon, len(seed)),
	}
	for _, c := range seed {
		if _, exists := s.byCode[c.Code]; !exists {
			s.order = append(s.order, c.Code)
		}
		s.byCode[c.Code] = c
	}
	return s
}

// GetByCode returns the coupon with the given code.
func (s *CouponServiceImpl) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	if s.repo != nil {
		coupon, err := s.repo.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if coupon != nil {
			return coupon, nil
		}
		metrics.CatalogFallbacksTotal.Inc()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	coupon, ok := s.byCode[code]
	if !ok {
		return nil, ErrCouponNotFound
	}
	return &coupon, nil
}

// List returns all coupons in insertion order.
func (s *CouponServiceImpl) List(ctx context.Context) ([]model.Coupon, error) {
	if s.repo != nil {
		coupons, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if coupons != nil {
			return coupons, nil
		}
		metrics.CatalogFallbacksTotal.Inc()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	coupons := make([]model.Coupon, 0, len(s.order))
	for _, code := range s.order {
		coupons = append(coupons, s.byCode[code])
	}
	return coupons, nil
}

// Create adds a new coupon. The code must be unused.
func (s *CouponServiceImpl) Create(ctx context.Context, coupon model.Coupon) error {
	if err := ValidateCoupon(coupon); err != nil {
		return err
	}

	if s.repo != nil {
		err := s.repo.Create(ctx, coupon)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrCouponExists
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byCode[coupon.Code]; exists {
		return ErrCouponExists
	}
	s.byCode[coupon.Code] = coupon
	s.order = append(s.order, coupon.Code)
	return nil
}

// ValidateCoupon rejects ill-formed coupons: unknown discount types, amount
// coupons with a negative value, percentage coupons outside [0,100].
func ValidateCoupon(c model.Coupon) error {
	if c.Code == "" {
		return errors.Join(ErrInvalidCoupon, errors.New("code is required"))
	}
	if !c.DiscountType.Valid() {
		return errors.Join(ErrInvalidCoupon, ErrUnknownDiscountType)
	}
	if c.DiscountType == model.DiscountTypeAmount && c.DiscountValue < 0 {
		return errors.Join(ErrInvalidCoupon, errors.New("amount must be non-negative"))
	}
	if c.DiscountType == model.DiscountTypePercentage && (c.DiscountValue < 0 || c.DiscountValue > 100) {
		return errors.Join(ErrInvalidCoupon, errors.New("percentage must be in [0,100]"))
	}
	return nil
}
