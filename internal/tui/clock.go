package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wrokout/internal/models"
)

const clockRows = 5

// 5x5 glyphs for the big rest clock
var clockGlyphs = map[rune][clockRows]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// bigClockLines lays text out in clock glyphs. Runes without a glyph are
// dropped.
func bigClockLines(text string) [clockRows]string {
	var rows [clockRows]strings.Builder
	for _, r := range text {
		glyph, ok := clockGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if rows[i].Len() > 0 {
				rows[i].WriteString(" ")
			}
			rows[i].WriteString(glyph[i])
		}
	}
	var out [clockRows]string
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

// renderBigClock renders seconds as a large m:ss clock centered in width
func renderBigClock(seconds int, color string, width int) string {
	lines := bigClockLines(models.FormatClock(seconds))
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = style.Render(line)
	}
	return strings.Join(rendered, "\n")
}
