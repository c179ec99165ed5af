package main

import (
	"io"
	"testing"

	"quantumguard-tui/config"
	"quantumguard-tui/wallet"
	"quantumguard-tui/walletconnect"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	logger := log.New(io.Discard)

	cfg := config.DefaultConfig()
	cfg.Provider = config.ProviderDemo
	require.IsType(t, wallet.DemoProvider{}, newProvider(cfg, logger))

	cfg.Provider = config.ProviderWalletConnect
	require.IsType(t, &walletconnect.Client{}, newProvider(cfg, logger))

	cfg.Provider = "ledger-nano"
	require.IsType(t, &walletconnect.Client{}, newProvider(cfg, logger))
}

func TestClientMeta(t *testing.T) {
	cfg := config.DefaultConfig()
	meta := clientMeta(cfg)
	require.Equal(t, walletconnect.DefaultMeta.Name, meta.Name)
	require.Contains(t, meta.Description, "(TestNet)")

	cfg.ClientName = "Guard Desk"
	meta = clientMeta(cfg)
	require.Equal(t, "Guard Desk", meta.Name)

	meta.Icons[0] = "changed"
	require.NotEqual(t, "changed", walletconnect.DefaultMeta.Icons[0])
	require.NotContains(t, walletconnect.DefaultMeta.Description, "TestNet")
}
