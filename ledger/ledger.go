package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
)

// Default timeouts for node calls
const (
	ProbeTimeout   = 8 * time.Second
	AccountTimeout = 12 * time.Second
)

// Client wraps an algod v2 client
type Client struct {
	*algod.Client
	URL string
}

// New builds a client for the algod endpoint at url. No request is made.
func New(url, token string) (*Client, error) {
	c, err := algod.MakeClient(url, token)
	if err != nil {
		return nil, fmt.Errorf("make algod client: %w", err)
	}
	return &Client{Client: c, URL: url}, nil
}

// NodeStatus is the subset of node status shown in the UI
type NodeStatus struct {
	LastRound uint64
	CheckedAt time.Time
}

// ConnectResult holds the result of a node probe
type ConnectResult struct {
	Client *Client
	Status NodeStatus
	Error  error
}

// Connect probes the node with the default timeout
func Connect(c *Client) ConnectResult {
	return ConnectWithTimeout(c, ProbeTimeout)
}

// ConnectWithTimeout probes the node with a custom timeout
func ConnectWithTimeout(c *Client, timeout time.Duration) ConnectResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	st, err := c.Probe(ctx)
	if err != nil {
		return ConnectResult{Client: nil, Error: err}
	}
	return ConnectResult{Client: c, Status: st}
}

// Probe asks the node for its status
func (c *Client) Probe(ctx context.Context) (NodeStatus, error) {
	if c == nil || c.Client == nil {
		return NodeStatus{}, fmt.Errorf("no algod client")
	}
	st, err := c.Status().Do(ctx)
	if err != nil {
		return NodeStatus{}, fmt.Errorf("algod status: %w", err)
	}
	return NodeStatus{LastRound: st.LastRound, CheckedAt: time.Now()}, nil
}

// Asset is a single asset holding of an account
type Asset struct {
	AssetID  uint64
	Amount   uint64
	IsFrozen bool
}

// AccountInfo contains the balance summary of an account in display units
type AccountInfo struct {
	Address    string
	Balance    float64
	MinBalance float64
	Assets     []Asset
	Round      uint64
	LoadedAt   time.Time
}

// AccountInfo fetches the account from the node, applying AccountTimeout
// when ctx has no deadline. Errors are returned as-is to the caller.
func (c *Client) AccountInfo(ctx context.Context, address string) (AccountInfo, error) {
	if c == nil || c.Client == nil {
		return AccountInfo{}, fmt.Errorf("no algod client (set ALGOD_URL)")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, AccountTimeout)
		defer cancel()
	}

	acct, err := c.AccountInformation(address).Do(ctx)
	if err != nil {
		return AccountInfo{}, fmt.Errorf("account information for %s: %w", FormatAddress(address, 6), err)
	}

	info := AccountInfo{
		Address:    acct.Address,
		Balance:    ToDisplayUnits(acct.Amount),
		MinBalance: ToDisplayUnits(acct.MinBalance),
		Round:      acct.Round,
		LoadedAt:   time.Now(),
	}
	for _, a := range acct.Assets {
		info.Assets = append(info.Assets, Asset{
			AssetID:  a.AssetId,
			Amount:   a.Amount,
			IsFrozen: a.IsFrozen,
		})
	}
	return info, nil
}
