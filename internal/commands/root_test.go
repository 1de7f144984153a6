package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command line against a config in dir
func run(t *testing.T, cfg, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCommands_PlanToHistory(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(fmt.Sprintf(`
database_path = %q
user = "alice"
notifications = false
rest_seconds = 60

[log]
file = %q
`, filepath.Join(dir, "wrokout.db"), filepath.Join(dir, "wrokout.log"))), 0o644))
	t.Cleanup(func() { logrus.SetOutput(io.Discard) })

	out := run(t, cfg, "", "plan", "add", "--no-ui", "Push", "Bench 2x5 @225 ~ss", "Dips 3 sets +amrap")
	assert.Contains(t, out, "✅ Created workout plan \"Push\" with 2 exercises")
	assert.Contains(t, out, "1. Bench  5 reps")

	out = run(t, cfg, "", "plan", "add", "--no-ui", "Legs", "Squat 3x5 @heavy")
	assert.Contains(t, out, "Error: exercise 1: Invalid weight 'heavy'")

	_ = run(t, cfg, "", "plan", "add", "--no-ui", "Pull", "Rows 3x10")
	out = run(t, cfg, "", "plan", "mv", "2", "1")
	assert.Contains(t, out, "Moved \"Pull\" to position 1")

	out = run(t, cfg, "", "plan", "ls", "--no-ui")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1  Pull"))
	assert.True(t, strings.HasPrefix(lines[2], "2  Push"))

	out = run(t, cfg, "log 1 1 5 225\nlog 1 2 5 225\nfinish\n", "start", "push", "--no-ui", "--rest", "90s")
	assert.Contains(t, out, "Superset: Move to Dips! No long rest.")
	assert.Contains(t, out, "✅ Workout \"Push\" saved: 2 sets")

	out = run(t, cfg, "", "history", "ls")
	assert.Contains(t, out, "Push")

	out = run(t, cfg, "", "history", "show", "1")
	assert.Contains(t, out, "2 sets of 5 reps @ 225lbs")

	out = run(t, cfg, "", "history", "set", "1", "1", "2", "reps", "6")
	assert.Contains(t, out, "✅ Workout updated")

	out = run(t, cfg, "", "history", "rmset", "1", "2", "1")
	assert.Contains(t, out, "set does not exist")

	out = run(t, cfg, "", "history", "date", "1", "15/02/2026")
	assert.Contains(t, out, "/02/2026")

	out = run(t, cfg, "n\n", "plan", "rm", "Push")
	assert.Contains(t, out, "Cancelled.")
	out = run(t, cfg, "y\n", "plan", "rm", "Push")
	assert.Contains(t, out, "Deleted workout plan \"Push\"")

	out = run(t, cfg, "", "history", "plan", "1")
	assert.Equal(t, "Original workout plan not found. It may have been deleted.\n", out)

	out = run(t, cfg, "", "history", "rm", "1", "--yes")
	assert.Contains(t, out, "Deleted workout \"Push\"")
	out = run(t, cfg, "", "history", "ls")
	assert.Contains(t, out, "No workouts logged yet")
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	showCustomHelp(&out)
	assert.Contains(t, out.String(), "wrokout - Terminal Workout Logger")
	assert.Contains(t, out.String(), "start <plan>")
	assert.Contains(t, out.String(), "~ss")
}
