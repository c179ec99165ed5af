package logs

import (
	"fmt"
	"strings"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewTable creates the activity table
func NewTable(width int) table.Model {
	t := table.New(
		table.WithColumns(Columns(width)),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.CBorder).
		BorderBottom(true).
		Foreground(styles.CAccent2).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.CBg).
		Background(styles.CAccent).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Columns sizes the table to width; the description column takes the rest
func Columns(width int) []table.Column {
	cols := []table.Column{
		{Title: "Time", Width: 8},
		{Title: "Type", Width: 8},
		{Title: "Severity", Width: 8},
		{Title: "Source", Width: 19},
		{Title: "Action", Width: 8},
	}
	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	return append(cols, table.Column{Title: "Description", Width: helpers.Max(20, width-used-8)})
}

// Rows converts records to table rows in the order given
func Rows(records []guardian.LogRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, table.Row{
			r.Timestamp.Format("15:04:05"),
			string(r.Type),
			string(r.Severity),
			r.Source,
			r.Action,
			r.Description,
		})
	}
	return rows
}

// Tabs renders the type filter tabs
func Tabs(active guardian.LogType) string {
	var tabs []string
	for _, t := range guardian.LogTabs {
		label := t.Label()
		if t == active {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Render renders the security logs view
func Render(active guardian.LogType, searchView string, tbl table.Model, shown, total int) string {
	count := styles.MutedStyle.Render(fmt.Sprintf("%d of %d events", shown, total))

	body := tbl.View()
	if shown == 0 {
		body = styles.MutedStyle.Render("No events match the current filter.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Security Logs"),
		styles.MutedStyle.Render("Everything the AI Guardian observed, flagged or blocked."),
		"",
		Tabs(active)+"  "+count,
		searchView,
		"",
		body,
	)
}

// Nav returns the navigation bar for logs view
func Nav(width int, searching bool) string {
	var left string
	if searching {
		left = strings.Join([]string{
			styles.Key("Enter") + " apply",
			styles.Key("Esc") + " clear",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " scroll",
			styles.Key("←/→") + " type",
			styles.Key("/") + " search",
			styles.Key("1-9") + " pages",
			styles.Key("l") + " logger",
			styles.Key("q") + " quit",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}
