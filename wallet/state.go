package wallet

import "quantumguard-tui/ledger"

// Status is the connection lifecycle stage
type Status int

const (
	Disconnected Status = iota
	Connecting
	Connected
	Error
)

func (s Status) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// WalletType identifies the provider that produced the connected account
type WalletType int

const (
	NoWallet WalletType = iota
	RemoteProvider
	Demo
)

func (t WalletType) String() string {
	switch t {
	case RemoteProvider:
		return "remote-provider"
	case Demo:
		return "demo"
	default:
		return ""
	}
}

// Method is how the user asked to connect
type Method int

const (
	MethodDirect Method = iota
	MethodRemote
)

func (m Method) String() string {
	if m == MethodRemote {
		return "remote"
	}
	return "direct"
}

// State is the connection state shown by the UI.
// Address, RawAddress, Balance and Account are only set when Connected;
// ErrorMessage is only set when Error.
type State struct {
	Status       Status
	Address      string
	RawAddress   string
	Balance      float64
	BalanceKnown bool
	Account      *ledger.AccountInfo
	WalletType   WalletType
	ErrorMessage string
	ModalVisible bool
}

// IsConnected reports whether an account is connected
func (s State) IsConnected() bool {
	return s.Status == Connected
}

// IsConnecting reports whether an attempt is in flight
func (s State) IsConnecting() bool {
	return s.Status == Connecting
}
