package main

import (
	"fmt"
	"strings"

	"quantumguard-tui/config"
	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/ledger"
	"quantumguard-tui/styles"
	"quantumguard-tui/views/alerts"
	"quantumguard-tui/views/community"
	"quantumguard-tui/views/connect"
	"quantumguard-tui/views/developer"
	"quantumguard-tui/views/features"
	"quantumguard-tui/views/forum"
	"quantumguard-tui/views/home"
	logview "quantumguard-tui/views/log"
	"quantumguard-tui/views/logs"
	"quantumguard-tui/views/performance"
	"quantumguard-tui/views/security"
	"quantumguard-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

// renderConnectModal centers the connect modal on screen
func (m *model) renderConnectModal(st wallet.State) string {
	dialog := connect.Render(connect.Params{
		State:      st,
		Form:       m.methodForm,
		Session:    m.sess,
		Method:     m.method,
		Generating: m.generating,
		Spinner:    m.spin.View(),
		Copied:     m.copiedMsg,
	})

	return lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

// walletStatus renders the connection indicator of the header
func walletStatus(st wallet.State, spinnerView string) string {
	switch st.Status {
	case wallet.Connected:
		balance := headerBalance(st)
		return lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render("● ") +
			helpers.FadeString(st.Address, styles.FadeAddrFrom, styles.FadeAddrTo) +
			lipgloss.NewStyle().Foreground(cMuted).Render("  "+balance)
	case wallet.Connecting:
		return lipgloss.NewStyle().Foreground(cAccent2).Bold(true).Render(spinnerView + " Connecting...")
	case wallet.Error:
		return lipgloss.NewStyle().Foreground(cError).Bold(true).Render("○ Connection failed")
	default:
		return lipgloss.NewStyle().Foreground(cMuted).Render("○ No wallet  ") + styles.Key("c") + lipgloss.NewStyle().Foreground(cMuted).Render(" connect")
	}
}

func headerBalance(st wallet.State) string {
	if !st.BalanceKnown {
		return "balance unavailable"
	}
	return ledger.FormatAmount(st.Balance)
}

// nodeStatus renders the algod indicator of the header
func (m *model) nodeStatus() string {
	var statusIcon, statusText string
	var statusColor lipgloss.Color

	switch {
	case m.ledger == nil:
		statusIcon = "○"
		statusColor = cError
		statusText = "No node"
	case m.nodeConnected:
		statusIcon = "●"
		statusColor = cAccent
		statusText = fmt.Sprintf("%s #%d", m.cfg.Network, m.node.LastRound)
	case m.nodeConnecting:
		statusIcon = "○"
		statusColor = cWarn
		statusText = "Connecting..."
	default:
		statusIcon = "○"
		statusColor = cError
		statusText = "Node unreachable"
	}

	return lipgloss.NewStyle().
		Foreground(statusColor).
		Bold(true).
		Render(statusIcon + " " + statusText)
}

// pageTabs renders the page switcher
func (m *model) pageTabs() string {
	var tabs []string
	for i, p := range config.Pages {
		label := fmt.Sprintf("%d %s", i+1, p)
		if p == m.activePage {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *model) globalHeader(st wallet.State) string {
	availableWidth := max(0, m.w-8) // Account for panel padding

	walletDisplay := walletStatus(st, m.spin.View())

	right := m.nodeStatus()
	if n := len(guardian.ActiveAlerts(m.alerts)); n > 0 {
		right = lipgloss.NewStyle().Foreground(cWarn).Render(fmt.Sprintf("⚠ %d  ", n)) + right
	}

	titleText := lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("QuantumGuard AI", styles.FadeTitleFrom, styles.FadeTitleTo))

	// Calculate widths
	walletWidth := lipgloss.Width(walletDisplay)
	rightWidth := lipgloss.Width(right)
	titleWidth := lipgloss.Width(titleText)
	totalOtherWidth := walletWidth + rightWidth + titleWidth

	var headerLine string
	if totalOtherWidth+4 > availableWidth {
		// Not enough space, stack vertically
		headerLine = walletDisplay + "\n" + titleText + "\n" + right
	} else {
		// Three-column layout: Wallet | Title (centered) | Node
		remainingSpace := availableWidth - totalOtherWidth
		leftPadding := remainingSpace / 2
		rightPadding := remainingSpace - leftPadding

		leftSpacer := strings.Repeat(" ", max(1, leftPadding))
		rightSpacer := strings.Repeat(" ", max(1, rightPadding))

		headerLine = walletDisplay + leftSpacer + titleText + rightSpacer + right
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator + "\n" + m.pageTabs()
}

func (m *model) View() string {
	st := m.machine.Snapshot()

	// The modal covers the whole screen
	if st.ModalVisible {
		return m.renderConnectModal(st)
	}

	headerPanel := panelStyle.Width(max(0, m.w-2)).Render(m.globalHeader(st))

	contentWidth := max(0, m.w-8)
	navWidth := max(0, m.w-2)

	var body, nav string
	switch m.activePage {
	case config.PageHome:
		body = home.Render(contentWidth, st, m.spin.View())
		nav = home.Nav(navWidth, st)

	case config.PageFeatures:
		body = features.Render(contentWidth, features.Node{
			Network:   m.cfg.Network,
			LastRound: m.node.LastRound,
			Live:      m.nodeConnected,
			Probing:   m.nodeConnecting,
			Err:       m.nodeErr,
		}, m.spin.View())
		nav = features.Nav(navWidth)

	case config.PageDeveloper:
		body = developer.Render(contentWidth)
		nav = developer.Nav(navWidth)

	case config.PageSecurity:
		body = security.Render(contentWidth, len(guardian.ActiveAlerts(m.alerts)))
		nav = security.Nav(navWidth)

	case config.PageAlerts:
		body = alerts.Render(contentWidth, m.alerts, m.selectedAlert, m.showResolved, m.now())
		nav = alerts.Nav(navWidth, m.showResolved)

	case config.PageLogs:
		search := ""
		if m.logSearch.Focused() || m.logSearch.Value() != "" {
			search = m.logSearch.View()
		}
		body = logs.Render(guardian.LogTabs[m.logTab], search, m.logTable, m.logShown, len(m.logRecords))
		nav = logs.Nav(navWidth, m.logSearch.Focused())

	case config.PagePerformance:
		body = performance.Render(contentWidth, m.perf)
		nav = performance.Nav(navWidth)

	case config.PageCommunity:
		body = community.Render(contentWidth)
		nav = community.Nav(navWidth)

	case config.PageForum:
		body = forum.Render(contentWidth, m.forumForm, m.drafts)
		nav = forum.Nav(navWidth, m.forumForm != nil)
	}

	if m.copiedMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(cAccent).Render(m.copiedMsg)
	}
	pageContent := panelStyle.Width(max(0, m.w-2)).Render(body)

	sections := []string{headerPanel, pageContent, nav}

	// Render log panel only if enabled
	if m.logEnabled {
		// Ensure viewport height stays in sync with the rendered panel
		m.logViewport.Height = logview.PanelHeight(m.h)
		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
