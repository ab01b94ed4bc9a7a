//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"tourpay/internal/domain/user"
	"tourpay/internal/pkg/config"
	"tourpay/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints staff tokens the same way reconcilectl does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) StaffToken(t *testing.T, role user.Role) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Second).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}
