//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stokship/internal/pkg/config"
	"stokship/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the external auth service would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}

// Party is an authenticated caller for e2e requests.
type Party struct {
	ID    uuid.UUID
	Token string
}

func (h *JWTHelper) NewParty(t *testing.T, role string) Party {
	t.Helper()
	id := uuid.New()
	return Party{ID: id, Token: h.GenerateToken(t, id, role)}
}
