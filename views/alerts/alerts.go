package alerts

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Visible returns the alerts listed in the view: unresolved ones by
// severity, followed by resolved ones newest first when showResolved is set
func Visible(all []guardian.Alert, showResolved bool) []guardian.Alert {
	out := guardian.ActiveAlerts(all)
	if !showResolved {
		return out
	}
	var resolved []guardian.Alert
	for _, a := range all {
		if a.Resolved {
			resolved = append(resolved, a)
		}
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Timestamp.After(resolved[j].Timestamp)
	})
	return append(out, resolved...)
}

// Render renders the AI Guardian alerts view
func Render(width int, all []guardian.Alert, selected int, showResolved bool, now time.Time) string {
	list := Visible(all, showResolved)
	counts := guardian.CountBySeverity(guardian.ActiveAlerts(all))

	summary := fmt.Sprintf("%s %d   %s %d   %s %d   %s %d",
		styles.Badge(string(guardian.SeverityCritical)), counts[guardian.SeverityCritical],
		styles.Badge(string(guardian.SeverityHigh)), counts[guardian.SeverityHigh],
		styles.Badge(string(guardian.SeverityMedium)), counts[guardian.SeverityMedium],
		styles.Badge(string(guardian.SeverityLow)), counts[guardian.SeverityLow],
	)

	listWidth := helpers.Max(36, width/2-4)
	var rows []string
	if len(list) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CAccent).Render("✓ No active threats"))
	}
	for i, a := range list {
		marker := "  "
		titleStyle := lipgloss.NewStyle().Foreground(styles.CText)
		if i == selected {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent).Render("▶ ")
			titleStyle = titleStyle.Bold(true).Foreground(styles.CAccent2)
		}
		line := marker + lipgloss.NewStyle().Foreground(styles.SeverityColor(string(a.Severity))).Render("●") + " " +
			titleStyle.Render(helpers.Truncate(a.Title, listWidth-16)) + " " +
			styles.MutedStyle.Render(helpers.Ago(a.Timestamp, now))
		if a.Resolved {
			line += styles.MutedStyle.Render(" (resolved)")
		}
		rows = append(rows, line)
	}
	left := styles.CardStyle.Width(listWidth).Render(strings.Join(rows, "\n"))

	var detail string
	if selected >= 0 && selected < len(list) {
		detail = Detail(list[selected], now)
	} else {
		detail = styles.MutedStyle.Render("Select an alert to see details.")
	}
	right := styles.CardStyle.Width(helpers.Max(30, width-listWidth-10)).Render(detail)

	var caps []string
	for _, c := range guardian.AlertCapabilities {
		caps = append(caps, lipgloss.NewStyle().Foreground(styles.CAccent2).Render(c.Title)+styles.MutedStyle.Render(" · "+c.Description))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("AI Guardian Alerts"),
		summary,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		"",
		styles.TitleStyle.Render("Detection Capabilities"),
		strings.Join(caps, "\n"),
	)
}

// Detail renders a single alert
func Detail(a guardian.Alert, now time.Time) string {
	lines := []string{
		styles.Badge(string(a.Severity)) + " " + lipgloss.NewStyle().Bold(true).Render(a.Title),
		styles.MutedStyle.Render(fmt.Sprintf("%s · %s", a.Type, a.Timestamp.Format("15:04:05"))) +
			styles.MutedStyle.Render(" ("+helpers.Ago(a.Timestamp, now)+")"),
		"",
		a.Description,
	}
	if a.Meta != nil {
		lines = append(lines, "", styles.SubtitleStyle.Render("Details"), a.Meta.Summary())
	}
	if len(a.RecommendedActions) > 0 {
		lines = append(lines, "", styles.SubtitleStyle.Render("Recommended actions"))
		for _, act := range a.RecommendedActions {
			lines = append(lines, "→ "+act)
		}
	}
	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for alerts view
func Nav(width int, showResolved bool) string {
	toggle := " show resolved"
	if showResolved {
		toggle = " hide resolved"
	}
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("a") + toggle,
		styles.Key("1-9") + " pages",
		styles.Key("l") + " logger",
		styles.Key("q") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
