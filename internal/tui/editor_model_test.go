package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wrokout/internal/db"
	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/plans"
)

func newEditor(t *testing.T, tmpl models.WorkoutTemplate) (EditorModel, *db.Store) {
	t.Helper()
	store := openStore(t)
	m := NewEditorModel(context.Background(), plans.NewService(store, testUsers()), tmpl)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(EditorModel), store
}

func TestEditorModel_CreatePlan(t *testing.T) {
	m, store := newEditor(t, plans.NewDraft(nil))

	m, _ = press(t, m, "Push Day", "enter")
	require.Equal(t, focusExercises, m.focus)

	// the draft's unnamed default exercise is replaced by a typed one
	m, _ = press(t, m, "x", "a", "Bench Press 3x5 @225 ~ss", "enter")
	m, _ = press(t, m, "a", "Dips 3 sets +amrap", "enter")
	require.Equal(t, 2, m.editor.Len())

	m, cmd := press(t, m, "ctrl+s")
	require.True(t, isQuit(cmd))
	assert.True(t, m.completed)
	assert.Equal(t, "Push Day", m.savedName)

	got, err := store.GetTemplate(context.Background(), testUser, m.savedID)
	require.NoError(t, err)
	require.Len(t, got.Exercises, 2)
	assert.Equal(t, "Bench Press", got.Exercises[0].Name)
	assert.Equal(t, 5, *got.Exercises[0].TargetRepsMin)
	assert.Equal(t, "225", got.Exercises[0].TargetWeight)
	assert.True(t, got.Exercises[0].SupersetWithNext)
	assert.Equal(t, models.SetAMRAP, got.Exercises[1].SetType)
}

func TestEditorModel_ValidationKeepsEditorOpen(t *testing.T) {
	m, _ := newEditor(t, plans.NewDraft(nil))

	m, cmd := press(t, m, "ctrl+s")
	assert.Nil(t, cmd)
	assert.Equal(t, "Workout Plan Name is required.", m.validationErr)

	m, cmd = press(t, m, "Legs", "ctrl+s")
	assert.Nil(t, cmd)
	assert.Equal(t, "All exercises must have a name. Exercise #1 is missing a name.", m.validationErr)

	m, _ = press(t, m, "enter", "a", "Squat 3x10 +bogus", "enter")
	assert.Equal(t, focusEntry, m.focus)
	assert.Contains(t, m.validationErr, "Invalid set type 'bogus'")
}

func TestEditorModel_EditExistingKeepsID(t *testing.T) {
	tmpl := models.WorkoutTemplate{
		ID:   "legs",
		Name: "Legs",
		Exercises: []models.ExerciseTarget{
			{ID: "sq", Name: "Squat", SetType: models.SetStandard, TargetSets: 3, TargetRepsMin: models.IntPtr(5), TargetRepsMax: models.IntPtr(5)},
			{ID: "lp", Name: "Leg Press", SetType: models.SetStandard, TargetSets: 3},
		},
	}
	m, _ := newEditor(t, tmpl)
	m, _ = press(t, m, "enter", "enter")
	require.Equal(t, focusEntry, m.focus)
	assert.Equal(t, "Squat 3x5", m.entry.Value())

	m.entry.SetValue("Front Squat 4x6")
	m, _ = press(t, m, "enter")
	got := m.editor.Template().Exercises[0]
	assert.Equal(t, "sq", got.ID)
	assert.Equal(t, "Front Squat", got.Name)
	assert.Equal(t, 4, got.TargetSets)

	m, _ = press(t, m, "J")
	assert.Equal(t, "Leg Press", m.editor.Template().Exercises[0].Name)
	assert.Equal(t, 1, m.selected)
}

func TestEditorModel_LeavingWithChangesAsks(t *testing.T) {
	m, _ := newEditor(t, models.WorkoutTemplate{ID: "x", Name: "Arms", Exercises: []models.ExerciseTarget{{ID: "c", Name: "Curl", TargetSets: 3}}})

	m, cmd := press(t, m, "enter", "esc")
	assert.True(t, isQuit(cmd), "nothing changed")
	assert.True(t, m.cancelled)

	m, _ = newEditor(t, models.WorkoutTemplate{ID: "x", Name: "Arms", Exercises: []models.ExerciseTarget{{ID: "c", Name: "Curl", TargetSets: 3}}})
	m, _ = press(t, m, "enter", "s", "esc")
	require.NotNil(t, m.saveModal)

	m, cmd = press(t, m, "n")
	assert.True(t, isQuit(cmd))
	assert.True(t, m.cancelled)
	assert.False(t, m.completed)
}
