//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yujinkim126/cart-service/config"
	"github.com/yujinkim126/cart-service/internal/circuitbreaker"
	"github.com/yujinkim126/cart-service/internal/testutil"
)

func integrationDatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()

	return config.DatabaseConfig{
		URI:                            testutil.GetSharedContainerURI(),
		DatabaseName:                   testutil.SanitizeDBName(t.Name()),
		LogsTTL:                        24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_SeedsCatalog(t *testing.T) {
	components := InitializeDatabase(integrationDatabaseConfig(t))
	require.NotNil(t, components)
	t.Cleanup(func() { _ = components.DB.Close(context.Background()) })

	ctx := context.Background()

	products, err := components.ProductRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	coupons, err := components.CouponRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, coupons, 2)

	assert.Equal(t, circuitbreaker.StateClosed.String(), components.CatalogCircuitBreaker.GetStats().State)
}

func TestInitializeDatabase_SeedingIsIdempotent(t *testing.T) {
	cfg := integrationDatabaseConfig(t)

	first := InitializeDatabase(cfg)
	require.NotNil(t, first)
	t.Cleanup(func() { _ = first.DB.Close(context.Background()) })

	second := InitializeDatabase(cfg)
	require.NotNil(t, second)
	t.Cleanup(func() { _ = second.DB.Close(context.Background()) })

	products, err := second.ProductRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestInitializeRouter_SeedsAdminUser(t *testing.T) {
	components := InitializeDatabase(integrationDatabaseConfig(t))
	require.NotNil(t, components)
	t.Cleanup(func() { _ = components.DB.Close(context.Background()) })

	cfg := config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Auth: config.AuthConfig{
			JWTSecretKey:     "test-secret",
			JWTRefreshSecret: "test-refresh-secret",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  time.Hour,
			AdminEmail:       "admin@example.com",
			AdminPassword:    "admin-password",
		},
	}

	routerComponents := InitializeRouter(InitializeServices(components), components, cfg)
	require.NotNil(t, routerComponents.Config.AuthService)

	// The seeded admin can log in and carries the admin claim.
	tokenPair, user, err := routerComponents.Config.AuthService.Login(context.Background(), "admin@example.com", "admin-password")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenPair.AccessToken)
	assert.True(t, user.Admin)
}
