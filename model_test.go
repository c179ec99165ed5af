package main

import (
	"context"
	"path/filepath"
	"testing"

	"quantumguard-tui/config"
	"quantumguard-tui/guardian"
	"quantumguard-tui/ledger"
	"quantumguard-tui/wallet"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	balance float64
}

func (f *stubFetcher) AccountInfo(_ context.Context, address string) (ledger.AccountInfo, error) {
	return ledger.AccountInfo{Address: address, Balance: f.balance}, nil
}

func newTestModel(t *testing.T) (*model, *stubFetcher) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Provider = config.ProviderDemo

	buf := &lockedBuffer{}
	logger := newLogger(buf)
	fetcher := &stubFetcher{balance: 5}
	machine := wallet.NewMachine(wallet.DemoProvider{}, fetcher, logger)

	m := newModel(cfg, filepath.Join(t.TempDir(), "config.json"), machine, nil, logger, buf)
	m.w, m.h = 120, 40
	return &m, fetcher
}

func press(m *model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// execCmd executes cmd, unwrapping a single-command batch
func execCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		return batch[0]()
	}
	return msg
}

func send(m *model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func connectDirect(t *testing.T, m *model) {
	t.Helper()
	press(m, "c")
	require.True(t, m.machine.Snapshot().ModalVisible)
	require.NotNil(t, m.methodForm)

	m.methodForm = nil
	cmd := m.startConnect(wallet.MethodDirect)
	require.Equal(t, wallet.Connecting, m.machine.Snapshot().Status)

	send(m, execCmd(t, cmd))
}

func TestDirectConnect(t *testing.T) {
	m, _ := newTestModel(t)
	connectDirect(t, m)

	st := m.machine.Snapshot()
	require.Equal(t, wallet.Connected, st.Status)
	require.Equal(t, wallet.Demo, st.WalletType)
	require.True(t, st.BalanceKnown)
	require.Equal(t, 5.0, st.Balance)
	require.False(t, st.ModalVisible)
	require.Contains(t, m.View(), "5 ALGO")
}

func TestRemoteConnectShowsSession(t *testing.T) {
	m, _ := newTestModel(t)
	m.openModal()
	m.methodForm = nil

	cmd := m.startConnect(wallet.MethodRemote)
	require.True(t, m.generating)
	require.Contains(t, m.View(), "Generating pairing code")

	attempt := send(m, execCmd(t, cmd))
	require.False(t, m.generating)
	require.NotNil(t, m.sess)
	require.Equal(t, wallet.Connecting, m.machine.Snapshot().Status)
	require.Contains(t, m.View(), m.sess.ID)

	send(m, execCmd(t, attempt))
	require.Nil(t, m.sess)
	require.True(t, m.machine.Snapshot().IsConnected())
}

func TestCloseModalDropsPendingWork(t *testing.T) {
	t.Run("session", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.openModal()
		m.methodForm = nil
		cmd := m.startConnect(wallet.MethodRemote)

		press(m, "esc")
		require.False(t, m.machine.Snapshot().ModalVisible)

		require.Nil(t, send(m, execCmd(t, cmd)))
		require.Nil(t, m.sess)
		require.Equal(t, wallet.Disconnected, m.machine.Snapshot().Status)
	})

	t.Run("attempt", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.openModal()
		m.methodForm = nil
		cmd := m.startConnect(wallet.MethodDirect)

		press(m, "esc")
		send(m, execCmd(t, cmd))
		require.Equal(t, wallet.Disconnected, m.machine.Snapshot().Status)
		require.Empty(t, m.machine.Snapshot().Address)
	})
}

func TestDisconnectAndRefresh(t *testing.T) {
	m, fetcher := newTestModel(t)
	connectDirect(t, m)

	fetcher.balance = 7.25
	send(m, execCmd(t, press(m, "r")))
	require.Equal(t, 7.25, m.machine.Snapshot().Balance)

	press(m, "x")
	require.Equal(t, wallet.State{}, m.machine.Snapshot())

	// refreshing after disconnect is a no-op
	require.Nil(t, press(m, "r"))
}

func TestPageKeys(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, config.PageHome, m.activePage)

	press(m, "7")
	require.Equal(t, config.PagePerformance, m.activePage)
	require.Contains(t, m.View(), "Performance Dashboard")

	press(m, "esc")
	require.Equal(t, config.PageHome, m.activePage)

	for i, p := range config.Pages {
		press(m, string(rune('1'+i)))
		require.Equal(t, p, m.activePage)
		require.NotEmpty(t, m.View())
	}
}

func TestLogsSearchAndTabs(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "6")
	require.Equal(t, config.PageLogs, m.activePage)
	require.Equal(t, 4, m.logShown)

	press(m, "/")
	require.True(t, m.logSearch.Focused())
	for _, r := range "guardian" {
		press(m, string(r))
	}
	require.Equal(t, "guardian", m.logSearch.Value())
	require.Equal(t, 1, m.logShown)
	require.Equal(t, config.PageLogs, m.activePage, "typing digits or letters must not switch pages")

	press(m, "esc")
	require.False(t, m.logSearch.Focused())
	require.Equal(t, 4, m.logShown)

	press(m, "right")
	require.Equal(t, guardian.LogThreat, guardian.LogTabs[m.logTab])
	require.Equal(t, 2, m.logShown)
}

func TestAlertsNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "5")

	press(m, "down")
	press(m, "down")
	require.Equal(t, 1, m.selectedAlert)

	press(m, "a")
	require.True(t, m.showResolved)
	require.Equal(t, 0, m.selectedAlert)
	require.Contains(t, m.View(), "(resolved)")
}

func TestForumDraftDiscard(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "9")
	press(m, "n")
	require.NotNil(t, m.forumForm)

	// keys go to the form, not the page switcher
	press(m, "1")
	require.Equal(t, config.PageForum, m.activePage)

	press(m, "esc")
	require.Nil(t, m.forumForm)
	require.Empty(t, m.drafts)
}

func TestToggleLoggerPersists(t *testing.T) {
	m, _ := newTestModel(t)
	require.False(t, m.logEnabled)

	require.NotNil(t, press(m, "l"))
	require.True(t, m.logEnabled)
	require.True(t, config.Load(m.configPath).Logger)

	send(m, logInitMsg{})
	require.True(t, m.logReady)
	require.Contains(t, m.logBuffer.String(), "Logger enabled")
	require.Contains(t, m.View(), "Activity Log")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "q")
	require.IsType(t, tea.QuitMsg{}, execCmd(t, cmd))
}
