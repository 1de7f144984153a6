package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/parser"
)

func TestParseExercise(t *testing.T) {
	t.Run("sets, rep range, weight and superset", func(t *testing.T) {
		r := parser.ParseExercise("Bench Press 3x8-12 @135 ~ss")
		require.Empty(t, r.Errors)
		ex := r.Exercise
		assert.Equal(t, "Bench Press", ex.Name)
		assert.Equal(t, models.SetStandard, ex.SetType)
		assert.Equal(t, 3, ex.TargetSets)
		assert.Equal(t, 8, *ex.TargetRepsMin)
		assert.Equal(t, 12, *ex.TargetRepsMax)
		assert.Equal(t, "135", ex.TargetWeight)
		assert.True(t, ex.SupersetWithNext)
		assert.NotEmpty(t, ex.ID)
	})

	t.Run("timed", func(t *testing.T) {
		r := parser.ParseExercise("Plank 3x1m30s")
		require.Empty(t, r.Errors)
		assert.Equal(t, "Plank", r.Exercise.Name)
		assert.Equal(t, models.SetTimed, r.Exercise.SetType)
		assert.Equal(t, 90, *r.Exercise.TargetDuration)
	})

	t.Run("explicit timed with plain number", func(t *testing.T) {
		r := parser.ParseExercise("Wall Sit +timed 2x45")
		require.Empty(t, r.Errors)
		assert.Equal(t, models.SetTimed, r.Exercise.SetType)
		assert.Equal(t, 45, *r.Exercise.TargetDuration)
		assert.Equal(t, 2, r.Exercise.TargetSets)
	})

	t.Run("set count and type", func(t *testing.T) {
		r := parser.ParseExercise("Pushups 4 sets +amrap")
		require.Empty(t, r.Errors)
		assert.Equal(t, "Pushups", r.Exercise.Name)
		assert.Equal(t, 4, r.Exercise.TargetSets)
		assert.Equal(t, models.SetAMRAP, r.Exercise.SetType)
	})

	t.Run("drops imply dropset", func(t *testing.T) {
		r := parser.ParseExercise("Curl 2 sets drops:25x10,20x8,15x")
		require.Empty(t, r.Errors)
		assert.Equal(t, "Curl", r.Exercise.Name)
		assert.Equal(t, models.SetDropset, r.Exercise.SetType)
		assert.Equal(t, []models.Drop{{Weight: "25", Reps: "10"}, {Weight: "20", Reps: "8"}, {Weight: "15"}}, r.Exercise.Drops)
	})

	t.Run("defaults", func(t *testing.T) {
		r := parser.ParseExercise("  Deadlift  ")
		require.Empty(t, r.Errors)
		assert.Equal(t, "Deadlift", r.Exercise.Name)
		assert.Equal(t, 3, r.Exercise.TargetSets)
		assert.Equal(t, "8-12 reps", models.FormatSetTarget(r.Exercise))
	})

	t.Run("errors", func(t *testing.T) {
		r := parser.ParseExercise("Row 3x12-8 @heavy +fancy drops:abc")
		assert.Len(t, r.Errors, 4)
		assert.Equal(t, "Row", r.Exercise.Name)
	})
}

func TestFormatExercise_RoundTrip(t *testing.T) {
	inputs := []string{
		"Bench Press 3x8-12 @135 ~ss",
		"Plank 3x60s",
		"Squat 5x5 @225 +warmup",
		"Pushups 4x10 +amrap",
		"Curl 2x8-12 +dropset drops:25x10,20x8",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			r := parser.ParseExercise(in)
			require.Empty(t, r.Errors)
			assert.Equal(t, in, parser.FormatExercise(r.Exercise))
		})
	}
}

func TestParseDrops(t *testing.T) {
	drops, err := parser.ParseDrops("25x10, 20x8,15x")
	require.NoError(t, err)
	assert.Equal(t, []models.Drop{{Weight: "25", Reps: "10"}, {Weight: "20", Reps: "8"}, {Weight: "15"}}, drops)

	_, err = parser.ParseDrops(" , ")
	assert.Error(t, err)
	_, err = parser.ParseDrops("heavy")
	assert.Error(t, err)
}
