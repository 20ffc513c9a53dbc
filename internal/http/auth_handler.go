package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yujinkim126/cart-service/internal/domain/dto"
	"github.com/yujinkim126/cart-service/internal/i18n"
	"github.com/yujinkim126/cart-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login user
// @Description  Authenticates a user and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.LoginResponse "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokenPair, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidCredentials, locale)
			builder.ErrorWithMessage(http.StatusUnauthorized, message, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)

	builder.SuccessOK(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
			Admin: user.Admin,
		},
	})
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register new user
// @Description  Creates a new user account and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.LoginResponse "Successful registration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - user already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	req, err := BuildRequestAndValidate[dto.RegisterRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokenPair, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyConflict, locale)
			builder.ErrorWithMessage(http.StatusConflict, message, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)

	builder.SuccessCreated(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
			Admin: user.Admin,
		},
	})
}

// RefreshToken handles POST /api/auth/refresh requests.
//
// @Summary      Refresh access token
// @Description  Generates a new token pair using a refresh token. The refresh token is extracted from the X-Refresh-Token header.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.LoginResponse "Successful token refresh"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid refresh token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	refreshToken := c.GetHeader("X-Refresh-Token")
	if refreshToken == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "X-Refresh-Token header is required", nil)
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			builder.ErrorWithMessage(http.StatusUnauthorized, message, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	})
}
