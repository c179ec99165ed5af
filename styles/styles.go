package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	CBg      = lipgloss.Color("#0B0F14") // near-black
	CPanel   = lipgloss.Color("#0F1720") // slightly lighter
	CBorder  = lipgloss.Color("#874BFD")
	CMuted   = lipgloss.Color("#8AA0B6")
	CText    = lipgloss.Color("#D6E2F0")
	CAccent  = lipgloss.Color("#7EE787") // green-ish
	CAccent2 = lipgloss.Color("#79C0FF") // blue-ish
	CWarn    = lipgloss.Color("#FFA657") // orange
	CError   = lipgloss.Color("#F85149")

	// brand gradients
	CQuantum  = lipgloss.Color("#A78BFA") // violet
	CNeural   = lipgloss.Color("#22D3EE") // cyan
	CAlgorand = lipgloss.Color("#F8FAFC")
)

// Gradient endpoints used with helpers.FadeString
const (
	FadeTitleFrom = "#A78BFA"
	FadeTitleTo   = "#22D3EE"
	FadeAddrFrom  = "#F25D94"
	FadeAddrTo    = "#EDFF82"
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Background(CBg).
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(CQuantum).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	PanelStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	CardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	NavStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Background(CPanel).
			Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(CError).
			Bold(true)

	HotkeyStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)

	HelpRightStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	TabStyle = lipgloss.NewStyle().
			Foreground(CMuted).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(CBg).
			Background(CAccent2).
			Bold(true).
			Padding(0, 1)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}

// SeverityColor maps an alert or log severity name to its color
func SeverityColor(severity string) lipgloss.Color {
	switch severity {
	case "critical":
		return CError
	case "high":
		return CWarn
	case "medium":
		return lipgloss.Color("#E3B341")
	default:
		return CAccent2
	}
}

// Badge renders a severity label
func Badge(severity string) string {
	return lipgloss.NewStyle().
		Foreground(CBg).
		Background(SeverityColor(severity)).
		Bold(true).
		Padding(0, 1).
		Render(severity)
}
