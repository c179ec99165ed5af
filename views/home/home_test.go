package home

import (
	"testing"

	"quantumguard-tui/guardian"
	"quantumguard-tui/ledger"
	"quantumguard-tui/wallet"

	"github.com/stretchr/testify/require"
)

func TestWalletPanel(t *testing.T) {
	t.Run("disconnected", func(t *testing.T) {
		require.Contains(t, WalletPanel(wallet.State{}, ""), "No wallet connected")
	})

	t.Run("connected", func(t *testing.T) {
		out := WalletPanel(wallet.State{
			Status:       wallet.Connected,
			Address:      "ABCDEF...UVWXYZ",
			Balance:      12.5,
			BalanceKnown: true,
			WalletType:   wallet.Demo,
			Account:      &ledger.AccountInfo{MinBalance: 0.1, Assets: []ledger.Asset{{AssetID: 31566704, Amount: 5}}},
		}, "")
		require.Contains(t, out, "12.5 ALGO")
		require.Contains(t, out, "demo")
	})

	t.Run("balance unknown", func(t *testing.T) {
		out := WalletPanel(wallet.State{Status: wallet.Connected, Address: "ABCDEF...UVWXYZ"}, "")
		require.Contains(t, out, "unavailable")
		require.NotContains(t, out, "ALGO")
	})

	t.Run("error", func(t *testing.T) {
		out := WalletPanel(wallet.State{Status: wallet.Error, ErrorMessage: "No accounts found in wallet"}, "")
		require.Contains(t, out, "No accounts found in wallet")
	})
}

func TestStatCards(t *testing.T) {
	out := StatCards(guardian.HomeStats, 120)
	for _, s := range guardian.HomeStats {
		require.Contains(t, out, s.Value)
	}
	require.Empty(t, StatCards(nil, 120))
}

func TestNav(t *testing.T) {
	require.Contains(t, Nav(100, wallet.State{}), "connect")
	require.Contains(t, Nav(100, wallet.State{Status: wallet.Connected}), "disconnect")
}
