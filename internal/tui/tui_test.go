package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wrokout/internal/auth"
	"github.com/balkashynov/wrokout/internal/db"
	"github.com/balkashynov/wrokout/internal/models"
)

const testUser = "alice"

func openStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "wrokout.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testUsers() auth.Static { return auth.Static(testUser) }

// key builds the message bubbletea sends for a key press
func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+z":
		return tea.KeyMsg{Type: tea.KeyCtrlZ}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to m and returns the model and the last command
func press[M tea.Model](t *testing.T, m M, keys ...string) (M, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		var ok bool
		m, ok = next.(M)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func benchAndPlank() models.WorkoutTemplate {
	return models.WorkoutTemplate{
		ID:   "push",
		Name: "Push",
		Exercises: []models.ExerciseTarget{
			{ID: "b", Name: "Bench", SetType: models.SetStandard, TargetSets: 2,
				TargetRepsMin: models.IntPtr(8), TargetRepsMax: models.IntPtr(12), TargetWeight: "135"},
			{ID: "p", Name: "Plank", SetType: models.SetTimed, TargetSets: 1, TargetDuration: models.IntPtr(30)},
		},
	}
}
