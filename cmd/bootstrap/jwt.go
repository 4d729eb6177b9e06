package bootstrap

import (
	"fmt"
	"time"

	"stokship/internal/pkg/config"
	"stokship/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService builds the validator for tokens minted by the auth service.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION %q: %w", cfg.JWT.Duration, err)
	}
	if tokenDuration <= 0 {
		return nil, fmt.Errorf("JWT_DURATION must be positive, got %s", tokenDuration)
	}
	return jwt.NewService(cfg.JWT.Secret, tokenDuration), nil
}
