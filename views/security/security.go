package security

import (
	"fmt"
	"strings"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the security center view. activeAlerts is shown as a
// reminder that the alerts view has unresolved items.
func Render(width int, activeAlerts int) string {
	colWidth := helpers.Max(28, (width-12)/3)

	var cards []string
	for _, t := range guardian.SecurityModules {
		body := lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render(t.Title) + "\n" +
			styles.MutedStyle.Render(t.Description)
		cards = append(cards, styles.CardStyle.Width(colWidth).Render(body))
	}

	var rows []string
	for i := 0; i < len(cards); i += 3 {
		end := helpers.Min(i+3, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	status := lipgloss.NewStyle().Foreground(styles.CAccent).Render("● All guardian engines online")
	if activeAlerts > 0 {
		status += styles.MutedStyle.Render("   ") +
			lipgloss.NewStyle().Foreground(styles.CWarn).Render(plural(activeAlerts, "active alert")) +
			styles.MutedStyle.Render(" (press ") + styles.Key("5") + styles.MutedStyle.Render(")")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Security Center"),
		styles.MutedStyle.Render("Wallet security settings, AI activity and key management."),
		status,
		"",
		strings.Join(rows, "\n"),
	)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Nav returns the navigation bar for security view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("1-9") + " pages",
		styles.Key("l") + " logger",
		styles.Key("q") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
