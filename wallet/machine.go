// Package wallet tracks the connection lifecycle of a user wallet.
//
// Machine is not safe for concurrent use. It is meant to be driven from a
// single event loop: Begin and Apply run on the loop, Run runs anywhere and
// only touches the injected provider and fetcher.
package wallet

import (
	"context"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"quantumguard-tui/ledger"
	"quantumguard-tui/session"
)

// Attempt is one connection attempt started by Begin
type Attempt struct {
	Gen     uint64
	Method  Method
	Session *session.Session

	ctx context.Context
}

// Result is the outcome of Run for an attempt
type Result struct {
	Gen        uint64
	Address    string
	WalletType WalletType
	Account    *ledger.AccountInfo
	FetchErr   error
	Err        error
}

// Machine owns the single connection State
type Machine struct {
	provider Provider
	fetcher  AccountFetcher
	logger   *log.Logger

	state  State
	gen    uint64
	cancel context.CancelFunc
}

// NewMachine returns a disconnected machine. fetcher and logger may be nil.
func NewMachine(provider Provider, fetcher AccountFetcher, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		provider: provider,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Snapshot returns a copy of the current state
func (m *Machine) Snapshot() State {
	s := m.state
	if s.Account != nil {
		acct := *s.Account
		acct.Assets = slices.Clone(acct.Assets)
		s.Account = &acct
	}
	return s
}

// OpenModal shows the connect modal and clears any previous error
func (m *Machine) OpenModal() {
	m.state.ModalVisible = true
	m.clearError()
}

// CloseModal hides the connect modal and abandons an in-flight attempt
func (m *Machine) CloseModal() {
	m.state.ModalVisible = false
	if m.state.Status == Connecting {
		m.logger.Info("Connection attempt abandoned", "gen", m.gen)
		m.state.Status = Disconnected
	}
	m.invalidate()
	m.clearError()
}

func (m *Machine) clearError() {
	m.state.ErrorMessage = ""
	if m.state.Status == Error {
		m.state.Status = Disconnected
	}
}

// invalidate makes any outstanding attempt stale and cancels it
func (m *Machine) invalidate() {
	m.gen++
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Connect runs a full attempt synchronously
func (m *Machine) Connect(ctx context.Context, method Method) State {
	a := m.begin(ctx, method, nil)
	m.Apply(m.Run(a))
	return m.Snapshot()
}

// Begin marks the machine as connecting and returns the attempt to Run
func (m *Machine) Begin(method Method, sess *session.Session) Attempt {
	return m.begin(context.Background(), method, sess)
}

func (m *Machine) begin(parent context.Context, method Method, sess *session.Session) Attempt {
	m.invalidate()
	ctx, cancel := context.WithCancel(parent)
	m.cancel = cancel

	m.state.Status = Connecting
	m.state.ErrorMessage = ""
	m.state.Address = ""
	m.state.RawAddress = ""
	m.state.Balance = 0
	m.state.BalanceKnown = false
	m.state.Account = nil

	m.logger.Info("Connecting wallet", "method", method, "gen", m.gen)
	return Attempt{Gen: m.gen, Method: method, Session: sess, ctx: ctx}
}

// Run talks to the provider and fetcher. It never touches the state.
func (m *Machine) Run(a Attempt) (res Result) {
	res.Gen = a.Gen
	defer func() {
		if r := recover(); r != nil {
			res = Result{Gen: a.Gen, Err: recovered(r)}
		}
	}()

	if m.provider == nil {
		res.Err = ErrNoProvider
		return res
	}
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	addrs, err := m.provider.Connect(ctx, Request{Method: a.Method, Session: a.Session})
	if err != nil {
		res.Err = err
		return res
	}
	if len(addrs) == 0 {
		res.Err = ErrNoAccounts
		return res
	}
	res.Address = addrs[0]
	res.WalletType = m.provider.Type()

	if m.fetcher == nil {
		res.FetchErr = errNoFetcher
		return res
	}
	info, err := m.fetcher.AccountInfo(ctx, res.Address)
	if err != nil {
		res.FetchErr = err
		return res
	}
	res.Account = &info
	return res
}

// Apply folds a result into the state. Results from stale attempts are
// dropped and Apply reports false.
func (m *Machine) Apply(res Result) bool {
	if res.Gen != m.gen || m.state.Status != Connecting {
		m.logger.Debug("Dropping stale connection result", "gen", res.Gen, "current", m.gen)
		return false
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	if res.Err != nil {
		m.state.Status = Error
		m.state.ErrorMessage = Categorize(res.Err)
		m.logger.Error("Wallet connection failed", "err", res.Err)
		return true
	}

	m.state.Status = Connected
	m.state.RawAddress = res.Address
	m.state.Address = ledger.FormatAddress(res.Address, 6)
	m.state.WalletType = res.WalletType
	m.state.ErrorMessage = ""
	m.state.ModalVisible = false
	m.setAccount(res.Account, res.FetchErr)

	m.logger.Info("Wallet connected", "address", m.state.Address, "type", res.WalletType)
	return true
}

func (m *Machine) setAccount(info *ledger.AccountInfo, fetchErr error) {
	if fetchErr != nil || info == nil {
		m.logger.Warn("Could not fetch balance", "address", m.state.Address, "err", fetchErr)
		m.state.Balance = 0
		m.state.BalanceKnown = false
		m.state.Account = nil
		return
	}
	m.state.Balance = info.Balance
	m.state.BalanceKnown = true
	m.state.Account = info
}

// Disconnect tells the provider to drop the session and resets the state
func (m *Machine) Disconnect() State {
	if m.provider != nil && m.state.WalletType != NoWallet {
		if err := m.provider.Disconnect(); err != nil {
			m.logger.Error("Error disconnecting wallet", "err", err)
		}
	}
	m.invalidate()
	m.state = State{}
	m.logger.Info("Wallet disconnected")
	return m.Snapshot()
}

// FetchAccount loads account info for address. Safe to call off the loop.
func (m *Machine) FetchAccount(ctx context.Context, address string) (ledger.AccountInfo, error) {
	if m.fetcher == nil {
		return ledger.AccountInfo{}, errNoFetcher
	}
	return m.fetcher.AccountInfo(ctx, address)
}

// ApplyAccount stores refreshed account info if address is still connected
func (m *Machine) ApplyAccount(address string, info ledger.AccountInfo, err error) bool {
	if m.state.Status != Connected || m.state.RawAddress != address {
		return false
	}
	m.setAccount(&info, err)
	return true
}

// Refresh re-fetches the connected account synchronously
func (m *Machine) Refresh(ctx context.Context) State {
	if m.state.Status != Connected {
		return m.Snapshot()
	}
	addr := m.state.RawAddress
	info, err := m.FetchAccount(ctx, addr)
	m.ApplyAccount(addr, info, err)
	return m.Snapshot()
}
