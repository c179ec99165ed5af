package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/stretchr/testify/require"
)

func newTestNode(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "")
	require.NoError(t, err)
	return c
}

func TestAccountInfo(t *testing.T) {
	addr := crypto.GenerateAccount().Address.String()

	c := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v2/accounts/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"address": "` + addr + `",
			"amount": 12500000,
			"min-balance": 100000,
			"round": 4242,
			"assets": [{"asset-id": 31566704, "amount": 5, "is-frozen": false}]
		}`))
	})

	t.Run("maps micro units", func(t *testing.T) {
		info, err := c.AccountInfo(context.Background(), addr)
		require.NoError(t, err)
		require.Equal(t, addr, info.Address)
		require.Equal(t, 12.5, info.Balance)
		require.Equal(t, 0.1, info.MinBalance)
		require.Equal(t, uint64(4242), info.Round)
		require.Equal(t, []Asset{{AssetID: 31566704, Amount: 5}}, info.Assets)
		require.False(t, info.LoadedAt.IsZero())
	})

	t.Run("nil client", func(t *testing.T) {
		var nc *Client
		_, err := nc.AccountInfo(context.Background(), addr)
		require.ErrorContains(t, err, "no algod client")
	})
}

func TestAccountInfoPropagatesErrors(t *testing.T) {
	c := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"account lookup failed"}`, http.StatusInternalServerError)
	})

	_, err := c.AccountInfo(context.Background(), crypto.GenerateAccount().Address.String())
	require.Error(t, err)
	require.Contains(t, err.Error(), "account information for")
}

func TestProbe(t *testing.T) {
	c := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"last-round": 31337}`))
	})

	res := ConnectWithTimeout(c, time.Second)
	require.NoError(t, res.Error)
	require.Same(t, c, res.Client)
	require.Equal(t, uint64(31337), res.Status.LastRound)
}

func TestProbeFailure(t *testing.T) {
	c := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	res := Connect(c)
	require.Error(t, res.Error)
	require.Nil(t, res.Client)
}

func TestConnectTestNet(t *testing.T) {
	url := os.Getenv("ALGOD_URL")
	if url == "" {
		t.Skip("ALGOD_URL not set, skipping connection test")
	}

	c, err := New(url, os.Getenv("ALGOD_TOKEN"))
	require.NoError(t, err)

	res := Connect(c)
	require.NoError(t, res.Error)
	t.Logf("Connected, last round: %d", res.Status.LastRound)
}
