package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirm is a yes/no question shown over a screen
type confirm struct {
	question string
	yes      bool
}

// handleKey applies a key to the dialog. done reports that the user
// answered; the answer is then in c.yes.
func (c confirm) handleKey(key string) (next confirm, done bool) {
	switch key {
	case "left", "right", "h", "l", "tab":
		c.yes = !c.yes
	case "y", "Y":
		c.yes = true
		return c, true
	case "n", "N", "esc":
		c.yes = false
		return c, true
	case "enter":
		return c, true
	}
	return c, false
}

// renderConfirm draws the dialog in the middle of a width x height area
func renderConfirm(c confirm, width, height int) string {
	var content strings.Builder
	content.WriteString(c.question + "\n\n")

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if c.yes {
		yesStyle = yesStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		yesStyle.Render("Yes"), "   ", noStyle.Render("No")))
	content.WriteString("\n\n← → or Y/N to choose, Enter to confirm")

	modal := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center).
		Render(content.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
