package middleware

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

func TestRequestLogger_WithoutLoggingService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(nil))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_PersistsEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockLogging := new(mocks.MockLoggingService)
	done := make(chan *model.LogEntry, 1)
	mockLogging.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) {
			done <- args.Get(1).(*model.LogEntry)
		}).
		Return(nil)

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(mockLogging))
	router.GET("/carts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case entry := <-done:
		assert.Equal(t, "GET", entry.Method)
		assert.Equal(t, "/carts", entry.Path)
		assert.Equal(t, http.StatusOK, entry.StatusCode)
		assert.Equal(t, "info", entry.Level)
		assert.NotEmpty(t, entry.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("log entry was not persisted")
	}
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, "info", getLogLevel(http.StatusOK))
	assert.Equal(t, "info", getLogLevel(http.StatusCreated))
	assert.Equal(t, "warn", getLogLevel(http.StatusNotFound))
	assert.Equal(t, "error", getLogLevel(http.StatusInternalServerError))
}
