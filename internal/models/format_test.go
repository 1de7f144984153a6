package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/wrokout/internal/models"
)

func TestFormatRepRange(t *testing.T) {
	ip := models.IntPtr
	tests := []struct {
		name     string
		min, max *int
		want     string
	}{
		{"range", ip(8), ip(12), "8-12 reps"},
		{"equal bounds", ip(8), ip(8), "8 reps"},
		{"only max", nil, ip(12), "12 reps"},
		{"only min", ip(5), nil, "5 reps"},
		{"neither", nil, nil, "reps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.FormatRepRange(tt.min, tt.max))
		})
	}
}

func TestFormatSetTarget(t *testing.T) {
	assert.Equal(t, "45s", models.FormatSetTarget(models.ExerciseTarget{
		SetType:        models.SetTimed,
		TargetDuration: models.IntPtr(45),
	}))
	assert.Equal(t, "N/As", models.FormatSetTarget(models.ExerciseTarget{SetType: models.SetTimed}))
	assert.Equal(t, "Drop Set (3 drops)", models.FormatSetTarget(models.ExerciseTarget{
		SetType: models.SetDropset,
		Drops:   make([]models.Drop, 3),
	}))
	assert.Equal(t, "AMRAP", models.FormatSetTarget(models.ExerciseTarget{SetType: models.SetAMRAP}))
	assert.Equal(t, "6-10 reps", models.FormatSetTarget(models.ExerciseTarget{
		SetType:       models.SetWarmup,
		TargetRepsMin: models.IntPtr(6),
		TargetRepsMax: models.IntPtr(10),
	}))
	// unknown types fall back to the rep range
	assert.Equal(t, "reps", models.FormatSetTarget(models.ExerciseTarget{SetType: "cluster"}))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "3:00", models.FormatClock(180))
	assert.Equal(t, "0:09", models.FormatClock(9))
	assert.Equal(t, "0:00", models.FormatClock(-4))
}

func TestParseSetType(t *testing.T) {
	for _, in := range []string{"AMRAP", " amrap "} {
		st, err := models.ParseSetType(in)
		assert.NoError(t, err)
		assert.Equal(t, models.SetAMRAP, st)
	}
	st, err := models.ParseSetType("")
	assert.NoError(t, err)
	assert.Equal(t, models.SetStandard, st)

	_, err = models.ParseSetType("superset")
	assert.Error(t, err)
}

func TestEmptySet(t *testing.T) {
	dropset := models.ExerciseTarget{SetType: models.SetDropset, Drops: make([]models.Drop, 2)}
	assert.Len(t, models.EmptySet(dropset).Drops, 2)

	standard := models.ExerciseTarget{SetType: models.SetStandard, Drops: make([]models.Drop, 2)}
	assert.Nil(t, models.EmptySet(standard).Drops)
}

func TestActiveExerciseCloneIsDeep(t *testing.T) {
	perf := "2 sets of 10 reps"
	orig := models.ActiveExercise{
		ExerciseTarget: models.ExerciseTarget{Name: "Row", Drops: []models.Drop{{Weight: "50"}}},
		LoggedSets:     []models.LoggedSet{{Reps: "10", Drops: []models.Drop{{Reps: "8"}}}},
		PreviousPerformance: &perf,
	}
	c := orig.Clone()
	c.LoggedSets[0].Reps = "12"
	c.LoggedSets[0].Drops[0].Reps = "6"
	c.Drops[0].Weight = "40"
	*c.PreviousPerformance = "changed"

	assert.Equal(t, "10", orig.LoggedSets[0].Reps)
	assert.Equal(t, "8", orig.LoggedSets[0].Drops[0].Reps)
	assert.Equal(t, "50", orig.Drops[0].Weight)
	assert.Equal(t, "2 sets of 10 reps", *orig.PreviousPerformance)
}
