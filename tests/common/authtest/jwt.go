//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"shiftcore/internal/pkg/config"
	"shiftcore/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a bearer token the way the running app would, so e2e
// requests pass the real auth middleware.
func IssueToken(t *testing.T, cfg config.Config, personID uuid.UUID, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err, "invalid JWT duration in test config")

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(personID, role)
	require.NoError(t, err, "failed to issue test token")
	return token
}
