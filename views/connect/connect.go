package connect

import (
	"strings"

	"quantumguard-tui/helpers"
	"quantumguard-tui/session"
	"quantumguard-tui/styles"
	"quantumguard-tui/wallet"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// TempMethod stores the method selection
var TempMethod string

// CreateForm creates the connection method form
func CreateForm() *huh.Form {
	TempMethod = wallet.MethodRemote.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(
					huh.NewOption("Remote scan (QR code)", wallet.MethodRemote.String()),
					huh.NewOption("Direct (wallet extension)", wallet.MethodDirect.String()),
				).
				Title("Connect Wallet").
				Description("Pair an Algorand wallet with QuantumGuard").
				Value(&TempMethod),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// ParseMethod maps a form value back to a method
func ParseMethod(s string) wallet.Method {
	if s == wallet.MethodDirect.String() {
		return wallet.MethodDirect
	}
	return wallet.MethodRemote
}

// Params is everything the modal draws
type Params struct {
	State      wallet.State
	Form       *huh.Form
	Session    *session.Session
	Method     wallet.Method
	Generating bool
	Spinner    string
	Copied     string
}

const dialogWidth = 60

// Render renders the connect modal body. The caller places it on screen.
func Render(p Params) string {
	title := lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("Connect Wallet", styles.FadeTitleFrom, styles.FadeTitleTo))
	lines := []string{title, ""}

	switch {
	case p.Form != nil:
		lines = append(lines, p.Form.View())

	case p.Generating:
		lines = append(lines, p.Spinner+" Generating pairing code…")

	case p.State.Status == wallet.Connecting && p.Method == wallet.MethodRemote && p.Session != nil:
		lines = append(lines, renderSession(p)...)

	case p.State.Status == wallet.Connecting:
		lines = append(lines,
			styles.MutedStyle.Render("Approve the request in your wallet extension."),
			"",
			p.Spinner+" Waiting for your wallet…",
		)

	case p.State.Status == wallet.Error:
		lines = append(lines,
			styles.ErrorStyle.Render("✗ "+p.State.ErrorMessage),
			"",
			styles.MutedStyle.Render("Retry with the same method or pick another one."),
		)

	default:
		lines = append(lines, styles.MutedStyle.Render("Choose a connection method to continue."))
	}

	lines = append(lines, "", hints(p))
	return styles.DialogStyle.Width(dialogWidth + 4).Render(strings.Join(lines, "\n"))
}

func renderSession(p Params) []string {
	s := p.Session
	var lines []string

	switch {
	case s.RenderErr != nil:
		lines = append(lines, styles.ErrorStyle.Render(s.QRImage))
	case s.QRText != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CAlgorand).Render(strings.TrimRight(s.QRText, "\n")))
	default:
		lines = append(lines, styles.MutedStyle.Render("QR code too large for the terminal, copy the URI instead."))
	}

	lines = append(lines,
		"",
		"Scan with Pera Wallet or any WalletConnect wallet",
		styles.MutedStyle.Render("Session: ")+s.ID,
		styles.MutedStyle.Render("URI: ")+helpers.Truncate(s.URI, dialogWidth-5),
	)
	if p.Copied != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CAccent).Render(p.Copied))
	}
	lines = append(lines, "", p.Spinner+" Waiting for approval…")
	return lines
}

func hints(p Params) string {
	var keys []string
	switch {
	case p.Form != nil:
		keys = append(keys, styles.Key("↑/↓")+" select", styles.Key("Enter")+" connect")
	case p.State.Status == wallet.Error:
		keys = append(keys, styles.Key("r")+" retry", styles.Key("m")+" method")
	case p.Session != nil:
		keys = append(keys, styles.Key("y")+" copy URI")
	}
	keys = append(keys, styles.Key("Esc")+" close")
	return strings.Join(keys, "   ")
}
