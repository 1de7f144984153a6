package parser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wrokout/internal/parser"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

	got, err := parser.ParseDate("28/02/2026", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), got)

	got, err = parser.ParseDate("Yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), got)

	got, err = parser.ParseDate("10 days ago", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), got)

	for _, in := range []string{"", "31/02/2026", "1/13/2026", "2026-03-01", "5/5/1900"} {
		_, err := parser.ParseDate(in, now)
		assert.Error(t, err, in)
	}
}
