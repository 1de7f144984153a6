package models

import (
	"fmt"
	"strconv"
)

// FormatRepRange renders a rep target such as "8-12 reps" or "10 reps"
func FormatRepRange(minReps, maxReps *int) string {
	switch {
	case minReps != nil && maxReps != nil && *minReps != *maxReps:
		return fmt.Sprintf("%d-%d reps", *minReps, *maxReps)
	case minReps != nil:
		return fmt.Sprintf("%d reps", *minReps)
	case maxReps != nil:
		return fmt.Sprintf("%d reps", *maxReps)
	}
	return "reps"
}

// FormatSetTarget renders the per-set target of an exercise
func FormatSetTarget(e ExerciseTarget) string {
	switch e.SetType.Normalize() {
	case SetTimed:
		// zero counts as unset, as in the editor
		if e.TargetDuration == nil || *e.TargetDuration == 0 {
			return "N/As"
		}
		return strconv.Itoa(*e.TargetDuration) + "s"
	case SetDropset:
		return fmt.Sprintf("Drop Set (%d drops)", len(e.Drops))
	case SetAMRAP:
		return "AMRAP"
	case SetStandard, SetWarmup:
		return FormatRepRange(e.TargetRepsMin, e.TargetRepsMax)
	}
	return FormatRepRange(e.TargetRepsMin, e.TargetRepsMax)
}

// FormatClock renders seconds as m:ss
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
