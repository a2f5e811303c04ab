package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("WAITER_PASSPHRASE", "")
	t.Setenv("STRICT_STATUS_FLOW", "")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	require.Empty(t, cfg.WaiterPassphrase)
	require.False(t, cfg.StrictStatusFlow)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BCRYPT_COST", "6")
	t.Setenv("WAITER_PASSPHRASE", "staff-only")
	t.Setenv("MANAGER_PASSPHRASE", "managers-only")
	t.Setenv("STRICT_STATUS_FLOW", "true")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 6, cfg.BcryptCost)
	require.Equal(t, "staff-only", cfg.WaiterPassphrase)
	require.Equal(t, "managers-only", cfg.ManagerPassphrase)
	require.True(t, cfg.StrictStatusFlow)
}

func TestLoadRejectsInvalidBcryptCost(t *testing.T) {
	for _, v := range []string{"not-a-number", "0", "99"} {
		t.Setenv("BCRYPT_COST", v)
		cfg := Load()
		require.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost, "BCRYPT_COST=%s", v)
	}
}
