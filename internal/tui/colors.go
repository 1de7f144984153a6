package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the wrokout theme
const (
	ColorCardBackground = "#1B1530" // Dark purple modal fill
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240"

	// Accents
	ColorAccentMain   = "#7C3AED"
	ColorAccentBright = "#A78BFA"
	ColorShine        = "#EAE6FF" // shimmer highlight

	// State
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E" // logged sets
	ColorWarning = "#F59E0B" // paused rest, supersets
	ColorRest    = "#38BDF8" // running rest clock
)

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
