// Package middleware provides JWT authentication middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yujinkim126/cart-service/internal/domain/dto"
	"github.com/yujinkim126/cart-service/internal/i18n"
	"github.com/yujinkim126/cart-service/internal/service"
)

// JWTAuth returns a middleware that validates JWT tokens.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		unauthorized := func(key string) {
			message := i18n.GetTranslator().Translate(key, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized(i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			unauthorized(i18n.ErrKeyInvalidToken)
			return
		}

		// Store user information in context
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("user_admin", claims.Admin)
		c.Set("user_claims", claims)

		c.Next()
	}
}

// AdminOnly returns a middleware that restricts access to admin users.
// It must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if admin, exists := c.Get("user_admin"); exists {
			if isAdmin, ok := admin.(bool); ok && isAdmin {
				c.Next()
				return
			}
		}

		locale := i18n.GetLocale(c)
		message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, locale)
		errorResp := dto.NewError(dto.ErrCodeForbidden, message).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
	}
}
