package features

import (
	"fmt"
	"strings"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"
	"quantumguard-tui/views/home"

	"github.com/charmbracelet/lipgloss"
)

// Node is the live network data shown next to the specs
type Node struct {
	Network   string
	LastRound uint64
	Live      bool
	Probing   bool
	Err       string
}

// Render renders the features view
func Render(width int, node Node, spinnerView string) string {
	colWidth := helpers.Max(30, (width-10)/2)

	var blocks []string
	for _, f := range guardian.Features {
		lines := []string{
			lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render(f.Title),
			styles.SubtitleStyle.Render(f.Subtitle),
			styles.MutedStyle.Render(f.Description),
		}
		for _, d := range f.Details {
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.CAccent).Render("✓ ")+d)
		}
		blocks = append(blocks, styles.CardStyle.Width(colWidth).Render(strings.Join(lines, "\n")))
	}

	var rows []string
	for i := 0; i < len(blocks); i += 2 {
		if i+1 < len(blocks) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks[i], blocks[i+1]))
		} else {
			rows = append(rows, blocks[i])
		}
	}

	var layers []string
	for i, l := range guardian.SecurityLayers {
		layers = append(layers, fmt.Sprintf("%s %s  %s",
			lipgloss.NewStyle().Foreground(styles.CQuantum).Bold(true).Render(fmt.Sprintf("L%d", len(guardian.SecurityLayers)-i)),
			lipgloss.NewStyle().Bold(true).Render(l.Name),
			styles.MutedStyle.Render(l.Description+" · "+strings.Join(l.Technologies, ", ")),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Advanced Security Features"),
		"",
		strings.Join(rows, "\n"),
		"",
		styles.TitleStyle.Render("Technical Specifications"),
		home.StatCards(guardian.TechnicalSpecs, width),
		NodeLine(node, spinnerView),
		"",
		styles.TitleStyle.Render("Security Architecture"),
		strings.Join(layers, "\n"),
	)
}

// NodeLine reports the latest block seen on the configured network
func NodeLine(node Node, spinnerView string) string {
	switch {
	case node.Live:
		return lipgloss.NewStyle().Foreground(styles.CAccent).Render("●") +
			fmt.Sprintf(" Algorand %s block height: #%d", node.Network, node.LastRound)
	case node.Probing:
		return spinnerView + " Reaching Algorand node…"
	case node.Err != "":
		return lipgloss.NewStyle().Foreground(styles.CWarn).Render("○ Node unreachable: " + node.Err)
	default:
		return styles.MutedStyle.Render("○ No Algorand node configured")
	}
}

// Nav returns the navigation bar for features view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("1-9") + " pages",
		styles.Key("p") + " probe node",
		styles.Key("l") + " logger",
		styles.Key("q") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
