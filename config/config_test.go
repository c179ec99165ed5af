package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	t.Run("creates default file", func(t *testing.T) {
		cfg := LoadOrCreate(path)
		require.Equal(t, DefaultConfig(), cfg)

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("fills missing fields", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`{"provider":"demo","logger":true}`), 0644))

		cfg := LoadOrCreate(path)
		require.Equal(t, ProviderDemo, cfg.Provider)
		require.True(t, cfg.Logger)
		require.Equal(t, DefaultConfig().AlgodURL, cfg.AlgodURL)
		require.Equal(t, DefaultConfig().BridgeURL, cfg.BridgeURL)
	})

	t.Run("invalid json falls back to defaults", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
		require.Equal(t, DefaultConfig(), LoadOrCreate(path))
	})
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.Network = "BetaNet"

	require.NoError(t, Save(path, cfg))
	require.Equal(t, cfg, Load(path))
}

func TestLoadMissingFile(t *testing.T) {
	require.Equal(t, Config{}, Load(filepath.Join(t.TempDir(), "nope.json")))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ALGOD_URL", " http://localhost:4001 ")
	t.Setenv("ALGOD_TOKEN", "aaaa")
	t.Setenv("WC_BRIDGE_URL", "")

	cfg := DefaultConfig().ApplyEnv()
	require.Equal(t, "http://localhost:4001", cfg.AlgodURL)
	require.Equal(t, "aaaa", cfg.AlgodToken)
	require.Equal(t, DefaultConfig().BridgeURL, cfg.BridgeURL)
}

func TestPageString(t *testing.T) {
	require.Len(t, Pages, 9)
	require.Equal(t, "Dashboard", PagePerformance.String())
	require.Equal(t, "Unknown", Page(42).String())
}
