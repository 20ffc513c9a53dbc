package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewAuthRoutes(t *testing.T) {
	routes := NewAuthRoutes(new(mocks.MockAuthService))

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.handler)
}

func TestAuthRoutes_RegisterPublicRoutes(t *testing.T) {
	routes := NewAuthRoutes(new(mocks.MockAuthService))

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/refresh"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestAuthRoutes_GetProtectedGroup(t *testing.T) {
	tests := []struct {
		name       string
		rateLimit  int
		rateWindow time.Duration
	}{
		{
			name:       "with rate limiting",
			rateLimit:  100,
			rateWindow: time.Minute,
		},
		{
			name:       "without rate limiting",
			rateLimit:  0,
			rateWindow: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := NewAuthRoutes(new(mocks.MockAuthService))

			router := gin.New()
			api := router.Group("/api")

			cfg := &RouterConfig{
				RateLimit:  tt.rateLimit,
				RateWindow: tt.rateWindow,
			}

			protected := routes.GetProtectedGroup(api, cfg)

			assert.NotNil(t, protected)
		})
	}
}

func TestCartRoutes_RegisterPublicRoutes(t *testing.T) {
	mockCarts := new(mocks.MockCartService)
	mockCarts.On("Create", mock.Anything).Return(model.EmptyCart("c1"), nil).Maybe()
	mockCarts.On("Get", mock.Anything, "c1").Return(model.EmptyCart("c1"), nil).Maybe()
	mockCarts.On("Delete", mock.Anything, "c1").Return(nil).Maybe()
	mockCarts.On("RemoveItem", mock.Anything, "c1", "p1").Return(model.EmptyCart("c1"), nil).Maybe()
	mockCarts.On("RemoveCoupon", mock.Anything, "c1").Return(model.EmptyCart("c1"), nil).Maybe()
	mockCarts.On("Totals", mock.Anything, "c1").Return(model.CartTotals{}, nil).Maybe()

	mockCatalog := new(mocks.MockCatalogService)
	mockCatalog.On("ListProducts", mock.Anything).Return([]model.Product{}, nil).Maybe()
	mockCatalog.On("GetProduct", mock.Anything, "p1").Return(&model.Product{ID: "p1"}, nil).Maybe()

	mockCoupons := new(mocks.MockCouponService)
	mockCoupons.On("List", mock.Anything).Return([]model.Coupon{}, nil).Maybe()

	routes := NewCartRoutes(NewHandler(mockCarts), mockCatalog, mockCoupons)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/carts"},
		{http.MethodGet, "/api/carts/c1"},
		{http.MethodDelete, "/api/carts/c1"},
		{http.MethodPost, "/api/carts/c1/items"},
		{http.MethodPut, "/api/carts/c1/items/p1"},
		{http.MethodDelete, "/api/carts/c1/items/p1"},
		{http.MethodPut, "/api/carts/c1/coupon"},
		{http.MethodDelete, "/api/carts/c1/coupon"},
		{http.MethodGet, "/api/carts/c1/totals"},
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/products/p1"},
		{http.MethodGet, "/api/coupons"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestCartRoutes_AdminRoutesNotPublic(t *testing.T) {
	routes := NewCartRoutes(
		NewHandler(new(mocks.MockCartService)),
		new(mocks.MockCatalogService),
		new(mocks.MockCouponService),
	)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	// Catalog management routes are only registered on the protected group.
	req := httptest.NewRequest(http.MethodPut, "/api/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req2 := httptest.NewRequest(http.MethodPost, "/api/coupons", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestCartRoutes_RegisterAdminRoutes(t *testing.T) {
	routes := NewCartRoutes(
		NewHandler(new(mocks.MockCartService)),
		new(mocks.MockCatalogService),
		new(mocks.MockCouponService),
	)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterAdminRoutes(api)

	// Without the admin claim in context the middleware rejects the request,
	// but the route exists.
	req := httptest.NewRequest(http.MethodPut, "/api/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
