package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	shimmerInterval = 100 * time.Millisecond
	shimmerBand     = 2 // glyphs lit on each side of the center
	shimmerPause    = 6 // steps held past the end before the next sweep
)

// shimmerTickMsg advances the highlight sweep
type shimmerTickMsg struct{}

// shimmer sweeps a bright band across the selected title. With motion
// reduced it renders a static highlight and never ticks.
type shimmer struct {
	pos     int
	enabled bool
}

func newShimmer(reduceMotion bool) shimmer {
	return shimmer{pos: -shimmerBand, enabled: !reduceMotion}
}

func (s shimmer) tick() tea.Cmd {
	if !s.enabled {
		return nil
	}
	return tea.Tick(shimmerInterval, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// advance moves the band one glyph along a text of n runes
func (s shimmer) advance(n int) shimmer {
	s.pos++
	if s.pos > n+shimmerBand+shimmerPause {
		s.pos = -shimmerBand
	}
	return s
}

func (s shimmer) reset() shimmer {
	s.pos = -shimmerBand
	return s
}

func (s shimmer) render(text string) string {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	if !s.enabled {
		return base.Render(text)
	}
	near := base.Foreground(lipgloss.Color(ColorPrimaryText))
	center := base.Foreground(lipgloss.Color(ColorShine))

	var b strings.Builder
	for i, r := range []rune(text) {
		d := i - s.pos
		if d < 0 {
			d = -d
		}
		switch {
		case d == 0:
			b.WriteString(center.Render(string(r)))
		case d <= shimmerBand:
			b.WriteString(near.Render(string(r)))
		default:
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
