package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/mocks"
	"github.com/yujinkim126/cart-service/internal/service"
)

func newCartTestRouter(carts service.CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(carts)
	router := gin.New()

	api := router.Group("/api")
	carts2 := api.Group("/carts")
	carts2.POST("", handler.CreateCart)
	carts2.GET("/:cartID", handler.GetCart)
	carts2.DELETE("/:cartID", handler.DeleteCart)
	carts2.POST("/:cartID/items", handler.AddItem)
	carts2.PUT("/:cartID/items/:productID", handler.UpdateItemQuantity)
	carts2.DELETE("/:cartID/items/:productID", handler.RemoveItem)
	carts2.PUT("/:cartID/coupon", handler.ApplyCoupon)
	carts2.DELETE("/:cartID/coupon", handler.RemoveCoupon)
	carts2.GET("/:cartID/totals", handler.GetTotals)

	return router
}

func TestHandler_CreateCart(t *testing.T) {
	mockCarts := new(mocks.MockCartService)
	mockCarts.On("Create", mock.Anything).Return(model.EmptyCart("cart-1"), nil)

	router := newCartTestRouter(mockCarts)

	req := httptest.NewRequest(http.MethodPost, "/api/carts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data model.Cart `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cart-1", resp.Data.ID)
	assert.Empty(t, resp.Data.Items)
	mockCarts.AssertExpectations(t)
}

func TestHandler_GetCart(t *testing.T) {
	t.Run("existing cart", func(t *testing.T) {
		mockCarts := new(mocks.MockCartService)
		mockCarts.On("Get", mock.Anything, "cart-1").Return(model.EmptyCart("cart-1"), nil)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodGet, "/api/carts/cart-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown cart returns 404", func(t *testing.T) {
		mockCarts := new(mocks.MockCartService)
		mockCarts.On("Get", mock.Anything, "nope").Return(model.Cart{}, service.ErrCartNotFound)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodGet, "/api/carts/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not_found")
	})
}

func TestHandler_DeleteCart(t *testing.T) {
	mockCarts := new(mocks.MockCartService)
	mockCarts.On("Delete", mock.Anything, "cart-1").Return(nil)

	router := newCartTestRouter(mockCarts)

	req := httptest.NewRequest(http.MethodDelete, "/api/carts/cart-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCarts.AssertExpectations(t)
}

func TestHandler_AddItem(t *testing.T) {
	cart := model.Cart{
		ID: "cart-1",
		Items: []model.CartItem{
			{Product: model.Product{ID: "p1", Name: "Product 1", Price: 10000, Stock: 20}, Quantity: 1},
		},
	}

	tests := []struct {
		name           string
		body           string
		setup          func(m *mocks.MockCartService)
		expectedStatus int
	}{
		{
			name: "adds a product",
			body: `{"product_id": "p1"}`,
			setup: func(m *mocks.MockCartService) {
				m.On("AddItem", mock.Anything, "cart-1", "p1").Return(cart, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing product_id",
			body:           `{}`,
			setup:          func(m *mocks.MockCartService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed JSON",
			body:           `{"product_id":`,
			setup:          func(m *mocks.MockCartService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown product",
			body: `{"product_id": "ghost"}`,
			setup: func(m *mocks.MockCartService) {
				m.On("AddItem", mock.Anything, "cart-1", "ghost").Return(model.Cart{}, service.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unknown cart",
			body: `{"product_id": "p1"}`,
			setup: func(m *mocks.MockCartService) {
				m.On("AddItem", mock.Anything, "cart-1", "p1").Return(model.Cart{}, service.ErrCartNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCarts := new(mocks.MockCartService)
			tt.setup(mockCarts)

			router := newCartTestRouter(mockCarts)

			req := httptest.NewRequest(http.MethodPost, "/api/carts/cart-1/items", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockCarts.AssertExpectations(t)
		})
	}
}

func TestHandler_UpdateItemQuantity(t *testing.T) {
	t.Run("sets the quantity", func(t *testing.T) {
		cart := model.Cart{
			ID: "cart-1",
			Items: []model.CartItem{
				{Product: model.Product{ID: "p1", Price: 10000, Stock: 20}, Quantity: 5},
			},
		}

		mockCarts := new(mocks.MockCartService)
		mockCarts.On("UpdateItemQuantity", mock.Anything, "cart-1", "p1", 5).Return(cart, nil)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodPut, "/api/carts/cart-1/items/p1", strings.NewReader(`{"quantity": 5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockCarts.AssertExpectations(t)
	})

	t.Run("zero quantity is valid and passed through", func(t *testing.T) {
		mockCarts := new(mocks.MockCartService)
		mockCarts.On("UpdateItemQuantity", mock.Anything, "cart-1", "p1", 0).Return(model.EmptyCart("cart-1"), nil)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodPut, "/api/carts/cart-1/items/p1", strings.NewReader(`{"quantity": 0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockCarts.AssertExpectations(t)
	})

	t.Run("missing quantity is rejected", func(t *testing.T) {
		mockCarts := new(mocks.MockCartService)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodPut, "/api/carts/cart-1/items/p1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockCarts.AssertNotCalled(t, "UpdateItemQuantity")
	})
}

func TestHandler_RemoveItem(t *testing.T) {
	mockCarts := new(mocks.MockCartService)
	mockCarts.On("RemoveItem", mock.Anything, "cart-1", "p1").Return(model.EmptyCart("cart-1"), nil)

	router := newCartTestRouter(mockCarts)

	req := httptest.NewRequest(http.MethodDelete, "/api/carts/cart-1/items/p1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCarts.AssertExpectations(t)
}

func TestHandler_ApplyCoupon(t *testing.T) {
	t.Run("applies a coupon", func(t *testing.T) {
		cart := model.EmptyCart("cart-1")
		cart.Coupon = &model.Coupon{Code: "PERCENT10", DiscountType: model.DiscountTypePercentage, DiscountValue: 10}

		mockCarts := new(mocks.MockCartService)
		mockCarts.On("ApplyCoupon", mock.Anything, "cart-1", "PERCENT10").Return(cart, nil)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodPut, "/api/carts/cart-1/coupon", strings.NewReader(`{"code": "PERCENT10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "PERCENT10")
	})

	t.Run("unknown coupon returns 404", func(t *testing.T) {
		mockCarts := new(mocks.MockCartService)
		mockCarts.On("ApplyCoupon", mock.Anything, "cart-1", "GHOST").Return(model.Cart{}, service.ErrCouponNotFound)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodPut, "/api/carts/cart-1/coupon", strings.NewReader(`{"code": "GHOST"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_RemoveCoupon(t *testing.T) {
	mockCarts := new(mocks.MockCartService)
	mockCarts.On("RemoveCoupon", mock.Anything, "cart-1").Return(model.EmptyCart("cart-1"), nil)

	router := newCartTestRouter(mockCarts)

	req := httptest.NewRequest(http.MethodDelete, "/api/carts/cart-1/coupon", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCarts.AssertExpectations(t)
}

func TestHandler_GetTotals(t *testing.T) {
	t.Run("returns the totals", func(t *testing.T) {
		totals := model.CartTotals{BeforeDiscount: 100000, AfterDiscount: 81000, DiscountAmount: 19000}

		mockCarts := new(mocks.MockCartService)
		mockCarts.On("Totals", mock.Anything, "cart-1").Return(totals, nil)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodGet, "/api/carts/cart-1/totals", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data model.CartTotals `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, totals, resp.Data)
	})

	t.Run("unknown cart returns 404", func(t *testing.T) {
		mockCarts := new(mocks.MockCartService)
		mockCarts.On("Totals", mock.Anything, "nope").Return(model.CartTotals{}, service.ErrCartNotFound)

		router := newCartTestRouter(mockCarts)

		req := httptest.NewRequest(http.MethodGet, "/api/carts/nope/totals", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
