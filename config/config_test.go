package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_TOKEN_TTL", "")
	t.Setenv("EMPLOYEE_TOKEN_TTL", "")
	t.Setenv("PORT", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, 240*time.Hour, cfg.AdminTokenTTL)
	require.Equal(t, time.Hour, cfg.EmployeeTokenTTL)
}

func TestLoadRequiresSecretAndURI(t *testing.T) {
	setRequired(t)
	t.Setenv("MONGO_URI", "")
	_, err := Load()
	require.Error(t, err)

	setRequired(t)
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadTTLOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_TOKEN_TTL", "12h")
	t.Setenv("EMPLOYEE_TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 12*time.Hour, cfg.AdminTokenTTL)
	require.Equal(t, 30*time.Minute, cfg.EmployeeTokenTTL)
}

func TestLoadRejectsMalformedTTL(t *testing.T) {
	// A TTL typo must stop the boot, not silently fall back to the default.
	setRequired(t)
	t.Setenv("ADMIN_TOKEN_TTL", "10days")
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ADMIN_TOKEN_TTL")

	setRequired(t)
	t.Setenv("EMPLOYEE_TOKEN_TTL", "sixty minutes")
	_, err = Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "EMPLOYEE_TOKEN_TTL")
}
