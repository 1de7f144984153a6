package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBigClockLines(t *testing.T) {
	lines := bigClockLines("2:05")

	// four glyphs of five columns with a single space between them
	for _, line := range lines {
		assert.Equal(t, 4*5+3, utf8.RuneCountInString(line))
	}
	top := strings.Join([]string{clockGlyphs['2'][0], clockGlyphs[':'][0], clockGlyphs['0'][0], clockGlyphs['5'][0]}, " ")
	assert.Equal(t, top, lines[0])
	assert.True(t, strings.HasPrefix(lines[4], "█████"))
}

func TestBigClockLines_SkipsUnknownRunes(t *testing.T) {
	assert.Equal(t, bigClockLines("1:00"), bigClockLines("1m:00s"))
	assert.Equal(t, [clockRows]string{}, bigClockLines(""))
}

func TestRenderBigClock(t *testing.T) {
	out := renderBigClock(185, ColorRest, 40)
	assert.Len(t, strings.Split(out, "\n"), clockRows)
}
