package log

import (
	"fmt"

	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// PanelHeight is the number of log lines shown for a terminal of height h.
// The panel takes at most a third of the screen and never more than 15 lines.
func PanelHeight(h int) int {
	// header (4 lines), nav (3 lines), title + borders (3 lines)
	available := helpers.Max(5, h-10)
	return helpers.Min(available, helpers.Min(h/3, 15))
}

// Render renders the log panel
func Render(width, height int, logReady bool, logSpinnerView string, vp viewport.Model) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Activity Log")

	panelHeight := PanelHeight(height)
	vp.Height = panelHeight

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(panelHeight + 2)

	if !logReady {
		return border.Render(title + "\n\n" + "initializing...\n" + logSpinnerView)
	}

	info := ""
	if n := vp.TotalLineCount(); n > vp.Height {
		info = lipgloss.NewStyle().
			Foreground(styles.CMuted).
			Render(fmt.Sprintf(" [%d%%] %s scroll", int(vp.ScrollPercent()*100), styles.Key("PgUp/PgDn")))
	}

	return border.Render(title + info + "\n\n" + vp.View())
}
