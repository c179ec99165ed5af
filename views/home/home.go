package home

import (
	"fmt"
	"strings"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/ledger"
	"quantumguard-tui/styles"
	"quantumguard-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the landing view
func Render(width int, st wallet.State, spinnerView string) string {
	hero := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("QuantumGuard AI", styles.FadeTitleFrom, styles.FadeTitleTo)),
		styles.SubtitleStyle.Render("Quantum-resistant wallet protection for Algorand"),
		styles.MutedStyle.Render("Post-quantum cryptography and an AI Guardian watching every transaction."),
	)

	cards := StatCards(guardian.HomeStats, width)

	var features []string
	for _, f := range guardian.Features {
		features = append(features,
			lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("◆ "+f.Title)+"\n"+
				styles.MutedStyle.Render("  "+f.Description))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		hero,
		"",
		cards,
		"",
		WalletPanel(st, spinnerView),
		"",
		styles.TitleStyle.Render("Why QuantumGuard"),
		strings.Join(features, "\n"),
	)
}

// StatCards lays stats out in a row of bordered cards
func StatCards(stats []guardian.Stat, width int) string {
	if len(stats) == 0 {
		return ""
	}
	cardWidth := helpers.Max(14, (width-8)/len(stats)-2)
	var cards []string
	for _, s := range stats {
		body := lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render(s.Value) + "\n" +
			styles.MutedStyle.Render(s.Label)
		cards = append(cards, styles.CardStyle.Width(cardWidth).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// WalletPanel summarizes the connection state
func WalletPanel(st wallet.State, spinnerView string) string {
	label := func(s string) string { return styles.MutedStyle.Render(fmt.Sprintf("%-10s", s)) }
	lines := []string{styles.TitleStyle.Render("Wallet")}

	switch st.Status {
	case wallet.Connected:
		balance := ledger.FormatAmount(st.Balance)
		if !st.BalanceKnown {
			balance = lipgloss.NewStyle().Foreground(styles.CWarn).Render("unavailable")
		}
		lines = append(lines,
			label("Address")+helpers.FadeString(st.Address, styles.FadeAddrFrom, styles.FadeAddrTo),
			label("Balance")+balance,
			label("Provider")+st.WalletType.String(),
		)
		if st.Account != nil {
			lines = append(lines,
				label("Min bal.")+ledger.FormatAmount(st.Account.MinBalance),
				label("Assets")+fmt.Sprintf("%d", len(st.Account.Assets)),
				label("Round")+fmt.Sprintf("%d (loaded %s)", st.Account.Round, helpers.LoadedAt(st.Account.LoadedAt, false)),
			)
		}
	case wallet.Connecting:
		lines = append(lines, spinnerView+" Connecting…")
	case wallet.Error:
		lines = append(lines, styles.ErrorStyle.Render("✗ "+st.ErrorMessage))
	default:
		lines = append(lines, styles.MutedStyle.Render("No wallet connected. Press ")+styles.Key("c")+styles.MutedStyle.Render(" to connect."))
	}

	return styles.CardStyle.BorderForeground(styles.CQuantum).Render(strings.Join(lines, "\n"))
}

// Nav returns the navigation bar for home view
func Nav(width int, st wallet.State) string {
	keys := []string{styles.Key("1-9") + " pages"}
	if st.IsConnected() {
		keys = append(keys, styles.Key("r")+" refresh", styles.Key("x")+" disconnect")
	} else {
		keys = append(keys, styles.Key("c")+" connect")
	}
	keys = append(keys,
		styles.Key("l")+" logger",
		styles.Key("q")+" quit",
	)

	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
