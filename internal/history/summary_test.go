package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wrokout/internal/history"
	"github.com/balkashynov/wrokout/internal/models"
)

func exercise(name string, setType models.SetType, sets ...models.LoggedSet) models.ActiveExercise {
	return models.ActiveExercise{
		ExerciseTarget: models.ExerciseTarget{Name: name, SetType: setType},
		LoggedSets:     sets,
	}
}

func done(reps, weight string) models.LoggedSet {
	return models.LoggedSet{Reps: reps, Weight: weight, Completed: true}
}

func TestSummarize_Standard(t *testing.T) {
	tests := []struct {
		name string
		sets []models.LoggedSet
		want string
	}{
		{
			name: "distinct reps keep per-set list, single weight collapses",
			sets: []models.LoggedSet{done("10", "100"), done("8", "100")},
			want: "2 sets of (10, 8) reps @ 100lbs",
		},
		{
			name: "single set",
			sets: []models.LoggedSet{done("5", "225")},
			want: "1 set of 5 reps @ 225lbs",
		},
		{
			name: "same reps, different weights",
			sets: []models.LoggedSet{done("10", "95"), done(" 10 ", "100")},
			want: "2 sets of 10 reps @ (95, 100) lbs",
		},
		{
			name: "no weights",
			sets: []models.LoggedSet{done("12", ""), done("12", " ")},
			want: "2 sets of 12 reps",
		},
		{
			name: "no reps",
			sets: []models.LoggedSet{done("", "50")},
			want: "1 set of N/A reps @ 50lbs",
		},
		{
			name: "uncompleted sets are ignored",
			sets: []models.LoggedSet{done("10", "100"), {Reps: "3", Weight: "300"}},
			want: "1 set of 10 reps @ 100lbs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := history.Summarize(exercise("Bench", models.SetStandard, tt.sets...))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarize_NoCompletedSetsIsAbsent(t *testing.T) {
	got, ok := history.Summarize(exercise("Bench", models.SetStandard, models.LoggedSet{Reps: "10"}))
	assert.False(t, ok)
	assert.Empty(t, got)

	_, ok = history.Summarize(exercise("Bench", models.SetTimed))
	assert.False(t, ok)
}

func TestSummarize_OtherSetTypes(t *testing.T) {
	d := models.IntPtr

	got, ok := history.Summarize(exercise("Plank", models.SetTimed,
		models.LoggedSet{Completed: true, DurationAchieved: d(60)},
		models.LoggedSet{Completed: true},
	))
	require.True(t, ok)
	assert.Equal(t, "2 sets of 60s, N/A", got)

	got, ok = history.Summarize(exercise("Curl", models.SetDropset, done("", ""), done("", "")))
	require.True(t, ok)
	assert.Equal(t, "2 drop sets completed", got)

	got, ok = history.Summarize(exercise("Pushup", models.SetAMRAP, done("20", "45"), done("", "")))
	require.True(t, ok)
	assert.Equal(t, "2 sets AMRAP: (20, N/A) reps @ 45lbs", got)

	got, ok = history.Summarize(exercise("Pullup", models.SetAMRAP, done("8", "")))
	require.True(t, ok)
	assert.Equal(t, "1 set AMRAP: (8) reps", got)

	got, ok = history.Summarize(exercise("Squat", models.SetWarmup, done("5", "135")))
	require.True(t, ok)
	assert.Equal(t, "1 set of 5 reps @ 135lbs", got)
}

func TestPreviousPerformance(t *testing.T) {
	base := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	logs := []models.WorkoutLog{
		{
			TemplateID:  "push",
			IsCompleted: true,
			StartTime:   base.AddDate(0, 0, -7),
			Exercises:   []models.ActiveExercise{exercise("Bench", models.SetStandard, done("6", "200"))},
		},
		{
			TemplateID:  "push",
			IsCompleted: true,
			StartTime:   base,
			Exercises: []models.ActiveExercise{
				exercise("Bench", models.SetStandard, done("10", "100"), done("8", "100")),
				exercise("Dips", models.SetAMRAP, models.LoggedSet{Reps: "12"}),
			},
		},
		{
			TemplateID:  "push",
			IsCompleted: false,
			StartTime:   base.AddDate(0, 0, 1),
			Exercises:   []models.ActiveExercise{exercise("Bench", models.SetStandard, done("1", "1"))},
		},
		{
			TemplateID:  "legs",
			IsCompleted: true,
			StartTime:   base.AddDate(0, 0, 2),
			Exercises:   []models.ActiveExercise{exercise("Bench", models.SetStandard, done("2", "2"))},
		},
	}

	got := history.PreviousPerformance(logs, "push")
	assert.Equal(t, map[string]string{"Bench": "2 sets of (10, 8) reps @ 100lbs"}, got)

	assert.Empty(t, history.PreviousPerformance(logs, "pull"))
	assert.Empty(t, history.PreviousPerformance(nil, "push"))
}
