package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wrokout/internal/models"
)

func TestParseExercises(t *testing.T) {
	got, err := parseExercises([]string{"Bench Press 3x8-12 @135 ~ss", "Plank 3x60s"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bench Press", got[0].Name)
	assert.True(t, got[0].SupersetWithNext)
	assert.Equal(t, models.SetTimed, got[1].SetType)
	assert.Equal(t, 60, *got[1].TargetDuration)

	_, err = parseExercises([]string{"Squat 3x5", "Rows +bogus", "3x10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exercise 2: Invalid set type 'bogus'")
	assert.Contains(t, err.Error(), "exercise 3: Exercise name is required")
	assert.NotContains(t, err.Error(), "exercise 1")
}

func TestEditPlan(t *testing.T) {
	tmpl := models.WorkoutTemplate{
		ID:   "upper",
		Name: "Upper",
		Exercises: []models.ExerciseTarget{
			{ID: "a", Name: "Bench", TargetSets: 3},
			{ID: "b", Name: "Rows", TargetSets: 3},
			{ID: "c", Name: "Curls", TargetSets: 2},
		},
	}

	got, err := editPlan(tmpl, "Upper A", []string{"Dips 3 sets +amrap"}, []int{2}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, "upper", got.ID)
	assert.Equal(t, "Upper A", got.Name)
	require.Len(t, got.Exercises, 3)
	assert.Equal(t, []string{"Bench", "Curls", "Dips"}, []string{got.Exercises[0].Name, got.Exercises[1].Name, got.Exercises[2].Name})
	assert.True(t, got.Exercises[0].SupersetWithNext)
	assert.NotEmpty(t, got.Exercises[2].ID)
	assert.Equal(t, "Rows", tmpl.Exercises[1].Name, "the loaded plan is not modified")

	_, err = editPlan(tmpl, "", nil, []int{4}, nil)
	assert.EqualError(t, err, "exercise #4 does not exist")
	_, err = editPlan(tmpl, "", nil, nil, []int{0})
	assert.Error(t, err)
}

func TestPosition(t *testing.T) {
	i, err := position(" 2 ", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	for _, arg := range []string{"0", "4", "x"} {
		_, err := position(arg, 3)
		assert.Error(t, err, arg)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, confirm(strings.NewReader(tt.input), &out, "Delete?"), "%q", tt.input)
		assert.Equal(t, "Delete? [y/N] ", out.String())
	}
}

func TestRenderPlanTable(t *testing.T) {
	var out bytes.Buffer
	renderPlanTable(&out, nil)
	assert.Contains(t, out.String(), "No workout plans yet")

	out.Reset()
	renderPlanTable(&out, []models.WorkoutTemplate{
		{ID: "p1", Name: "Push", Exercises: make([]models.ExerciseTarget, 3)},
		{ID: "p2", Name: strings.Repeat("Long ", 20)},
	})
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NAME")
	assert.True(t, strings.HasPrefix(lines[1], "1  Push"))
	assert.Contains(t, lines[2], "...")
}
