package developer

import (
	"strings"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the developer portal view
func Render(width int) string {
	lines := []string{
		styles.TitleStyle.Render("Developer Portal"),
		styles.MutedStyle.Render("SDK examples and API documentation for building on QuantumGuard."),
		"",
	}
	for _, t := range guardian.DeveloperTopics {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▸ "+t.Title),
			styles.MutedStyle.Width(helpers.Max(20, width-10)).Render("  "+t.Description),
			"",
		)
	}

	lines = append(lines, styles.TitleStyle.Render("Resources"))
	for _, r := range guardian.Resources {
		lines = append(lines, r.Name+"  "+styles.MutedStyle.Render(r.URL))
	}
	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for developer view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("1-9") + " pages",
		styles.Key("l") + " logger",
		styles.Key("q") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
