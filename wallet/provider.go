package wallet

import (
	"context"

	"github.com/algorand/go-algorand-sdk/v2/crypto"

	"quantumguard-tui/ledger"
	"quantumguard-tui/session"
)

// Request is passed to a provider for one connection attempt.
// Session is set for the remote method and may be nil otherwise.
type Request struct {
	Method  Method
	Session *session.Session
}

// Provider pairs with a wallet and returns its account addresses
type Provider interface {
	Connect(ctx context.Context, req Request) ([]string, error)
	Disconnect() error
	Type() WalletType
}

// AccountFetcher loads the balance summary for an address
type AccountFetcher interface {
	AccountInfo(ctx context.Context, address string) (ledger.AccountInfo, error)
}

// DemoProvider hands out a freshly generated account
type DemoProvider struct{}

func (DemoProvider) Connect(ctx context.Context, _ Request) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []string{crypto.GenerateAccount().Address.String()}, nil
}

func (DemoProvider) Disconnect() error { return nil }

func (DemoProvider) Type() WalletType { return Demo }
