//go:build e2e

package helper

import (
	"testing"
	"time"

	"slotify/internal/domain/user"
	"slotify/internal/pkg/config"
	"slotify/internal/pkg/jwt"
	"slotify/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens the way an external identity provider
// would. The service has no login endpoint; it only validates bearer
// tokens signed with the shared secret.
type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

// CreateTestUser inserts a user row and returns its ID.
func (h *JWTTestHelper) CreateTestUser(t *testing.T, username, role string, reminderHours int) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, username, username+"@example.com", role, reminderHours)
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateAndAuthenticate creates a user and returns both its ID and a
// valid bearer token for it.
func (h *JWTTestHelper) CreateAndAuthenticate(t *testing.T, username string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	userID := h.CreateTestUser(t, username, role.String(), 0)
	return userID, h.GenerateToken(t, userID, role)
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
