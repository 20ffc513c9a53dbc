// Package app provides authentication initialization.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yujinkim126/cart-service/config"
	"github.com/yujinkim126/cart-service/internal/service"
)

// seedAdminUser registers the initial admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured. Registration is idempotent: an existing
// account with the same email is left untouched.
func seedAdminUser(authService *service.AuthServiceImpl, cfg config.AuthConfig) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return
		}
		log.Warn().Err(err).Str("email", cfg.AdminEmail).Msg("Failed to seed admin user")
		return
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("Created initial admin user")
}
