package forum

import (
	"fmt"
	"strings"

	"quantumguard-tui/guardian"
	"quantumguard-tui/helpers"
	"quantumguard-tui/styles"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Temporary form field storage
var (
	TempTitle    string
	TempCategory string
	TempBody     string
)

// CreateForm creates the new draft form
func CreateForm() *huh.Form {
	TempTitle = ""
	TempCategory = guardian.ForumCategories[0]
	TempBody = ""

	var options []huh.Option[string]
	for _, c := range guardian.ForumCategories {
		options = append(options, huh.NewOption(c, c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("What is your post about?").
				Placeholder("Dilithium vs Ed25519 signing costs").
				CharLimit(80).
				Value(&TempTitle).
				Validate(guardian.ValidateTitle),

			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&TempCategory),

			huh.NewText().
				Title("Body").
				Description("At least 20 characters").
				Value(&TempBody).
				Validate(guardian.ValidateBody),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Draft returns the draft held by the form fields
func Draft() guardian.Draft {
	return guardian.Draft{
		Title:    strings.TrimSpace(TempTitle),
		Category: TempCategory,
		Body:     strings.TrimSpace(TempBody),
	}
}

// Render renders the forum view
func Render(width int, form *huh.Form, drafts []guardian.Draft) string {
	lines := []string{
		styles.TitleStyle.Render("Community Forum"),
		styles.MutedStyle.Render("Draft questions and ideas. Drafts stay on this machine."),
		"",
	}

	if form != nil {
		lines = append(lines, styles.CardStyle.BorderForeground(styles.CAccent2).Render(form.View()))
		return strings.Join(lines, "\n")
	}

	var cats []string
	for _, c := range guardian.ForumCategories {
		n := 0
		for _, d := range drafts {
			if d.Category == c {
				n++
			}
		}
		cats = append(cats, fmt.Sprintf("%s %s", c, styles.MutedStyle.Render(fmt.Sprintf("(%d)", n))))
	}
	lines = append(lines, styles.SubtitleStyle.Render("Categories")+"  "+strings.Join(cats, "   "), "")

	if len(drafts) == 0 {
		lines = append(lines, styles.MutedStyle.Render("No drafts yet. Press ")+styles.Key("n")+styles.MutedStyle.Render(" to write one."))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, styles.SubtitleStyle.Render("Your drafts"))
	for i := len(drafts) - 1; i >= 0; i-- {
		d := drafts[i]
		lines = append(lines,
			lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render(d.Title)+" "+styles.MutedStyle.Render("["+d.Category+"]"),
			"  "+helpers.Truncate(strings.ReplaceAll(d.Body, "\n", " "), helpers.Max(20, width-12)),
		)
	}
	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for forum view
func Nav(width int, editing bool) string {
	var left string
	if editing {
		left = strings.Join([]string{
			styles.Key("Tab") + " next field",
			styles.Key("Enter") + " submit",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("n") + " new draft",
			styles.Key("1-9") + " pages",
			styles.Key("l") + " logger",
			styles.Key("q") + " quit",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}
