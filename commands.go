package main

import (
	"context"
	"time"

	"quantumguard-tui/ledger"
	"quantumguard-tui/session"
	"quantumguard-tui/wallet"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// nodeProbeInterval is how often the header's block height is refreshed
const nodeProbeInterval = 30 * time.Second

// probeNode checks that the algod node answers. Scheduled probes re-arm the
// probe timer when they complete.
func probeNode(c *ledger.Client, scheduled bool) tea.Cmd {
	return func() tea.Msg {
		return nodeProbedMsg{res: ledger.Connect(c), scheduled: scheduled}
	}
}

// scheduleNodeProbe waits for the next probe
func scheduleNodeProbe() tea.Cmd {
	return tea.Tick(nodeProbeInterval, func(time.Time) tea.Msg {
		return nodeTickMsg{}
	})
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// generateSession builds a pairing session and renders its QR codes
func generateSession(bridge string, token uint64) tea.Cmd {
	return func() tea.Msg {
		return sessionReadyMsg{token: token, sess: session.Generate(bridge)}
	}
}

// runAttempt drives a connection attempt off the event loop
func runAttempt(machine *wallet.Machine, a wallet.Attempt) tea.Cmd {
	return func() tea.Msg {
		return connectResultMsg{res: machine.Run(a)}
	}
}

// refreshAccount reloads balance and assets of the connected address
func refreshAccount(machine *wallet.Machine, address string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ledger.AccountTimeout)
		defer cancel()
		info, err := machine.FetchAccount(ctx, address)
		return accountLoadedMsg{address: address, info: info, err: err}
	}
}

// copyToClipboard copies text to the system clipboard
func copyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		if err == nil {
			return clipboardCopiedMsg{what: what}
		}
		return nil
	}
}

// clearClipboardFeedback waits 2 seconds then clears clipboard feedback
func clearClipboardFeedback() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearClipboardMsg{}
	})
}

// addLog writes a message to the log panel
func (m *model) addLog(logType, message string, keyvals ...interface{}) {
	if m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message, keyvals...)
	case "success":
		m.logger.Info("✓ "+message, keyvals...)
	case "error":
		m.logger.Error(message, keyvals...)
	case "warning":
		m.logger.Warn(message, keyvals...)
	case "debug":
		m.logger.Debug(message, keyvals...)
	default:
		m.logger.Print(message, keyvals...)
	}

	m.updateLogViewport()
}

// updateLogViewport updates the log viewport with current log content
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	content := m.logBuffer.String()
	if len(content) == m.logSeen {
		return
	}
	m.logSeen = len(content)
	m.logViewport.SetContent(content)
	m.logViewport.GotoBottom()
}
