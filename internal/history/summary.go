// Package history derives previous-performance summaries from saved
// workout logs and manages editing and deletion of those logs.
package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balkashynov/wrokout/internal/models"
)

// NoPreviousData is shown for exercises without a summary
const NoPreviousData = "No previous data"

// PreviousPerformance finds the most recent completed log of templateID and
// summarises each of its exercises, keyed by exercise name. Exercises
// without completed sets have no entry.
func PreviousPerformance(logs []models.WorkoutLog, templateID string) map[string]string {
	result := make(map[string]string)
	last, ok := latestCompleted(logs, templateID)
	if !ok {
		return result
	}
	for _, ex := range last.Exercises {
		if summary, ok := Summarize(ex); ok {
			result[ex.Name] = summary
		}
	}
	return result
}

// latestCompleted picks the newest completed log of the template. Logs are
// normally listed newest first; comparing start times keeps the result
// right for any order.
func latestCompleted(logs []models.WorkoutLog, templateID string) (models.WorkoutLog, bool) {
	var (
		best  models.WorkoutLog
		found bool
	)
	for _, l := range logs {
		if !l.IsCompleted || l.TemplateID != templateID {
			continue
		}
		if !found || l.StartTime.After(best.StartTime) {
			best = l
			found = true
		}
	}
	return best, found
}

// Summarize renders the completed sets of one logged exercise. It reports
// false when no set was completed.
func Summarize(ex models.ActiveExercise) (string, bool) {
	var completed []models.LoggedSet
	for _, s := range ex.LoggedSets {
		if s.Completed {
			completed = append(completed, s)
		}
	}
	n := len(completed)
	if n == 0 {
		return "", false
	}

	switch ex.SetType.Normalize() {
	case models.SetTimed:
		durations := make([]string, n)
		for i, s := range completed {
			if s.DurationAchieved != nil && *s.DurationAchieved != 0 {
				durations[i] = strconv.Itoa(*s.DurationAchieved) + "s"
			} else {
				durations[i] = "N/A"
			}
		}
		return fmt.Sprintf("%d %s of %s", n, plural("set", n), strings.Join(durations, ", ")), true

	case models.SetDropset:
		return fmt.Sprintf("%d drop %s completed", n, plural("set", n)), true

	case models.SetAMRAP:
		reps := make([]string, n)
		for i, s := range completed {
			reps[i] = orNA(s.Reps)
		}
		summary := fmt.Sprintf("%d %s AMRAP: (%s) reps", n, plural("set", n), strings.Join(reps, ", "))
		if w := completed[0].Weight; w != "" {
			summary += fmt.Sprintf(" @ %slbs", w)
		}
		return summary, true

	case models.SetStandard, models.SetWarmup:
		return summarizeStandard(completed), true
	}
	return summarizeStandard(completed), true
}

func summarizeStandard(completed []models.LoggedSet) string {
	n := len(completed)
	reps := make([]string, n)
	weights := make([]string, n)
	for i, s := range completed {
		reps[i] = strings.TrimSpace(s.Reps)
		weights[i] = strings.TrimSpace(s.Weight)
	}

	var repsDisplay string
	switch uniqueReps := distinctNonEmpty(reps); len(uniqueReps) {
	case 0:
		repsDisplay = "N/A reps"
	case 1:
		repsDisplay = uniqueReps[0] + " reps"
	default:
		repsDisplay = "(" + strings.Join(reps, ", ") + ") reps"
	}

	summary := fmt.Sprintf("%d %s of %s", n, plural("set", n), repsDisplay)
	switch uniqueWeights := distinctNonEmpty(weights); len(uniqueWeights) {
	case 0:
	case 1:
		summary += " @ " + uniqueWeights[0] + "lbs"
	default:
		summary += " @ (" + strings.Join(weights, ", ") + ") lbs"
	}
	return summary
}

func distinctNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
