package shop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh service.
func TestLivezEndpoint(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	health, err := env.client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies readiness, including the dependency checks.
func TestReadyzEndpoint(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	health, err := env.client.GetReadiness(t.Context())
	assertHealthy(t, health, err)

	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database, "Database check should pass")
	require.Equal(t, "ok", health.Checks.Verifier, "Verifier check should pass")

	t.Logf("Readyz endpoint is healthy")
}
