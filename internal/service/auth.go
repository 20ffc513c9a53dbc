package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yujinkim126/cart-service/config"
	"github.com/yujinkim126/cart-service/internal/domain/dto"
	"github.com/yujinkim126/cart-service/internal/domain/model"
	"github.com/yujinkim126/cart-service/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when trying to register an existing user.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService provides authentication operations. Tokens are stateless:
// validation only checks the signature and expiry, no server-side state.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error)
	Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService backed by the user repository.
type AuthServiceImpl struct {
	userRepo      repository.UserRepositoryInterface
	secretKey     []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepositoryInterface, authConfig config.AuthConfig) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		secretKey:     []byte(authConfig.JWTSecretKey),
		refreshSecret: []byte(authConfig.JWTRefreshSecret),
		accessTTL:     authConfig.AccessTokenTTL,
		refreshTTL:    authConfig.RefreshTokenTTL,
	}
}

// Login authenticates a user and returns JWT tokens.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return tokenPair, user, nil
}

// Register creates a new user account and returns JWT tokens.
func (s *AuthServiceImpl) Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existingUser != nil {
		return nil, nil, ErrUserExists
	}

	existingUserByUsername, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if existingUserByUsername != nil {
		return nil, nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Name:     name,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, nil, ErrUserExists
		}
		return nil, nil, err
	}

	tokenPair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	return tokenPair, user, nil
}

// EnsureAdmin creates an admin account with the given credentials when no
// user with that email exists. Existing accounts are left untouched, so the
// call is safe to repeat at every startup.
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:    email,
		Username: email,
		Password: string(hashedPassword),
		Name:     "Administrator",
		Admin:    true,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.parseToken(refreshToken, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(user)
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	return s.parseToken(tokenString, s.secretKey)
}

func (s *AuthServiceImpl) generateTokenPair(user *model.User) (*dto.TokenPair, error) {
	now := time.Now()

	accessToken, err := s.signToken(user, s.secretKey, now, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signToken(user, s.refreshSecret, now, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *AuthServiceImpl) signToken(user *model.User, secret []byte, now time.Time, ttl time.Duration) (string, error) {
	claims := ClaimsWithJWT{
		Claims: dto.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Admin:  user.Admin,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *AuthServiceImpl) parseToken(tokenString string, secret []byte) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok {
		return nil, ErrInvalidToken
	}
	return &claims.Claims, nil
}
