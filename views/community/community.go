package community

import (
	"strings"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the community view
func Render(width int) string {
	postWidth := helpers.Max(30, width*2/3-6)

	var posts []string
	for _, p := range guardian.CommunityPosts {
		head := lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render(p.Title)
		meta := styles.Badge(strings.ToLower(p.Tag)) + " " + styles.MutedStyle.Render(p.Date.Format("Jan 2, 2006"))
		posts = append(posts, styles.CardStyle.Width(postWidth).Render(head+"\n"+meta+"\n"+p.Excerpt))
	}

	side := []string{styles.SubtitleStyle.Render("Announcements")}
	for _, a := range guardian.Announcements {
		side = append(side, "• "+a)
	}
	side = append(side, "", styles.SubtitleStyle.Render("Resources"))
	for _, r := range guardian.Resources {
		side = append(side, r.Name, styles.MutedStyle.Render("  "+r.URL))
	}
	sidebar := styles.CardStyle.Width(helpers.Max(24, width-postWidth-10)).Render(strings.Join(side, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Community"),
		styles.MutedStyle.Render("Research, developer notes and news from the QuantumGuard community."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(posts, "\n"), " ", sidebar),
	)
}

// Nav returns the navigation bar for community view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("1-9") + " pages",
		styles.Key("9") + " forum",
		styles.Key("l") + " logger",
		styles.Key("q") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
