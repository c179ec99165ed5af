package performance

import (
	"fmt"
	"strings"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"
	"quantumguard-tui/views/home"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Chart plots a series. Empty series render a placeholder.
func Chart(points []guardian.Point, width, height int, caption string) string {
	if len(points) == 0 {
		return styles.MutedStyle.Render("no data")
	}
	return asciigraph.Plot(guardian.Values(points),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Benchmarks draws sign and verify times side by side
func Benchmarks(pqc []guardian.Benchmark, barWidth int) string {
	const scale = 4.0 // ms at full bar
	var lines []string
	for _, b := range pqc {
		lines = append(lines, fmt.Sprintf("%-10s %s %4.2fms  %s %4.2fms",
			b.Algo,
			lipgloss.NewStyle().Foreground(styles.CQuantum).Render(helpers.Bar(b.Sign/scale*100, barWidth)), b.Sign,
			lipgloss.NewStyle().Foreground(styles.CNeural).Render(helpers.Bar(b.Verify/scale*100, barWidth)), b.Verify,
		))
	}
	legend := lipgloss.NewStyle().Foreground(styles.CQuantum).Render("■ sign") + "  " +
		lipgloss.NewStyle().Foreground(styles.CNeural).Render("■ verify")
	return legend + "\n" + strings.Join(lines, "\n")
}

// Engines draws the CPU share of each guardian engine
func Engines(engines []guardian.Usage, barWidth int) string {
	var lines []string
	for _, e := range engines {
		lines = append(lines, fmt.Sprintf("%-20s %s %3d%%",
			e.Name,
			lipgloss.NewStyle().Foreground(styles.CAccent).Render(helpers.Bar(float64(e.Percent), barWidth)),
			e.Percent,
		))
	}
	return strings.Join(lines, "\n")
}

// Render renders the performance dashboard
func Render(width int, p guardian.Performance) string {
	chartWidth := helpers.Max(20, (width-24)/2)

	latency := styles.CardStyle.Render(
		styles.SubtitleStyle.Render("Transaction Latency (ms)") + "\n" +
			Chart(p.Latency, chartWidth, 8, "last 12 minutes"))
	tps := styles.CardStyle.Render(
		styles.SubtitleStyle.Render("Throughput (TPS)") + "\n" +
			Chart(p.TPS, chartWidth, 8, "last 10 samples"))

	pqc := styles.CardStyle.Render(
		styles.SubtitleStyle.Render("PQC Benchmarks") + "\n" + Benchmarks(p.PQC, 12))
	engines := styles.CardStyle.Render(
		styles.SubtitleStyle.Render("Guardian Engines") + "\n" + Engines(p.Engines, 20))

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Performance Dashboard"),
		home.StatCards(p.Cards, width),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, latency, " ", tps),
		lipgloss.JoinHorizontal(lipgloss.Top, pqc, " ", engines),
	)
}

// Nav returns the navigation bar for performance view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("g") + " resample",
		styles.Key("1-9") + " pages",
		styles.Key("l") + " logger",
		styles.Key("q") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
