package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/balkashynov/wrokout/internal/models"
)

// ParsedExercise represents an exercise parsed from natural syntax
type ParsedExercise struct {
	Exercise models.ExerciseTarget
	Errors   []string
}

var (
	dropsRegex    = regexp.MustCompile(`(?i)\bdrops:(\S+)`)
	dropRegex     = regexp.MustCompile(`(?i)^([0-9.]*)x(\d*)$`)
	setsRepsRegex = regexp.MustCompile(`(?i)\b(\d+)\s*x\s*([0-9:]+(?:-\d+|[a-z]+(?:\d+[a-z]+)?)?)(?:\s|$)`)
	rangeRegex    = regexp.MustCompile(`^(\d+)-(\d+)$`)
	setsRegex     = regexp.MustCompile(`(?i)\b(\d+)\s+sets?\b`)
	weightRegex   = regexp.MustCompile(`@(\S+)`)
	typeRegex     = regexp.MustCompile(`\+([a-zA-Z-]+)`)
	supersetRegex = regexp.MustCompile(`(?i)(?:^|\s)~ss\b`)
)

// ParseExercise extracts exercise targets using natural syntax
// Syntax: "Bench Press 3x8-12 @135 +warmup ~ss"
//   - 3x8-12 / 3x10   sets and rep range
//   - 3x60s / 3x1:30  sets of a timed hold
//   - 3 sets          set count only
//   - @135            target weight
//   - +amrap          set type (standard, warmup, dropset, amrap, timed)
//   - drops:25x10,20x10  drop set steps (weight x reps)
//   - ~ss             superset with the next exercise
//
// Anything not recognised is the exercise name. Targets that are not given
// keep the defaults of a new exercise.
func ParseExercise(input string) ParsedExercise {
	ex := models.DefaultExercise()
	result := ParsedExercise{Errors: []string{}}
	explicitType := false

	// Extract set type (+amrap)
	if m := typeRegex.FindStringSubmatch(input); m != nil {
		t, err := models.ParseSetType(m[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid set type '"+m[1]+"'. Use: standard, warmup, dropset, amrap, or timed")
		} else {
			ex.SetType = t
			explicitType = true
		}
		input = typeRegex.ReplaceAllString(input, " ")
	}

	// Extract drops (drops:25x10,20x8)
	if m := dropsRegex.FindStringSubmatch(input); m != nil {
		drops, err := ParseDrops(m[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid drops '"+m[1]+"': "+err.Error())
		} else {
			ex.Drops = drops
			if !explicitType {
				ex.SetType = models.SetDropset
				explicitType = true
			}
		}
		input = dropsRegex.ReplaceAllString(input, " ")
	}

	// Extract sets x reps / sets x duration
	if m := setsRepsRegex.FindStringSubmatch(input); m != nil {
		sets, _ := strconv.Atoi(m[1])
		if sets < 1 {
			result.Errors = append(result.Errors, "Set count must be at least 1")
		} else {
			ex.TargetSets = sets
		}
		if err := applyTarget(&ex, m[2], explicitType); err != nil {
			result.Errors = append(result.Errors, "Invalid target '"+m[2]+"': "+err.Error())
		}
		input = strings.Replace(input, strings.TrimSpace(m[0]), " ", 1)
	} else if m := setsRegex.FindStringSubmatch(input); m != nil {
		sets, _ := strconv.Atoi(m[1])
		if sets < 1 {
			result.Errors = append(result.Errors, "Set count must be at least 1")
		} else {
			ex.TargetSets = sets
		}
		input = setsRegex.ReplaceAllString(input, " ")
	}

	// Extract weight (@135)
	if m := weightRegex.FindStringSubmatch(input); m != nil {
		w := strings.TrimSuffix(strings.ToLower(m[1]), "lbs")
		if _, err := strconv.ParseFloat(w, 64); err != nil {
			result.Errors = append(result.Errors, "Invalid weight '"+m[1]+"'. Use a number, e.g. @135 or @22.5")
		} else {
			ex.TargetWeight = w
		}
		input = weightRegex.ReplaceAllString(input, " ")
	}

	// Extract superset flag (~ss)
	if supersetRegex.MatchString(input) {
		ex.SupersetWithNext = true
		input = supersetRegex.ReplaceAllString(input, " ")
	}

	// Clean up the name (remove extra spaces)
	ex.Name = strings.Join(strings.Fields(input), " ")
	result.Exercise = ex
	return result
}

// applyTarget interprets the part after "Nx": a rep count, a rep range,
// or a duration for timed sets
func applyTarget(ex *models.ExerciseTarget, target string, explicitType bool) error {
	if m := rangeRegex.FindStringSubmatch(target); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo > hi {
			return fmt.Errorf("rep range must go from low to high")
		}
		ex.TargetRepsMin = models.IntPtr(lo)
		ex.TargetRepsMax = models.IntPtr(hi)
		return nil
	}

	if reps, err := strconv.Atoi(target); err == nil && ex.SetType != models.SetTimed {
		ex.TargetRepsMin = models.IntPtr(reps)
		ex.TargetRepsMax = models.IntPtr(reps)
		return nil
	}

	secs, err := ParseSeconds(target)
	if err != nil {
		return err
	}
	ex.TargetDuration = models.IntPtr(secs)
	if !explicitType {
		ex.SetType = models.SetTimed
	}
	return nil
}

// ParseDrops reads drop steps written as "weight x reps" separated by commas,
// e.g. "25x10, 20x8"
func ParseDrops(input string) ([]models.Drop, error) {
	var drops []models.Drop
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := dropRegex.FindStringSubmatch(part)
		if m == nil {
			return nil, fmt.Errorf("use weight x reps, e.g. 25x10")
		}
		drops = append(drops, models.Drop{Weight: m[1], Reps: m[2]})
	}
	if len(drops) == 0 {
		return nil, fmt.Errorf("at least one drop is required")
	}
	return drops, nil
}

// FormatExercise renders an exercise back into the syntax ParseExercise
// reads
func FormatExercise(ex models.ExerciseTarget) string {
	parts := []string{ex.Name}
	t := ex.SetType.Normalize()

	switch {
	case t == models.SetTimed:
		d := 60
		if ex.TargetDuration != nil && *ex.TargetDuration > 0 {
			d = *ex.TargetDuration
		}
		parts = append(parts, fmt.Sprintf("%dx%ds", ex.TargetSets, d))
	case ex.TargetRepsMin != nil && ex.TargetRepsMax != nil && *ex.TargetRepsMin != *ex.TargetRepsMax:
		parts = append(parts, fmt.Sprintf("%dx%d-%d", ex.TargetSets, *ex.TargetRepsMin, *ex.TargetRepsMax))
	case ex.TargetRepsMax != nil:
		parts = append(parts, fmt.Sprintf("%dx%d", ex.TargetSets, *ex.TargetRepsMax))
	case ex.TargetRepsMin != nil:
		parts = append(parts, fmt.Sprintf("%dx%d", ex.TargetSets, *ex.TargetRepsMin))
	default:
		parts = append(parts, fmt.Sprintf("%d sets", ex.TargetSets))
	}

	if ex.TargetWeight != "" {
		parts = append(parts, "@"+ex.TargetWeight)
	}
	if t != models.SetStandard && t != models.SetTimed {
		parts = append(parts, "+"+string(t))
	}
	if t == models.SetDropset && len(ex.Drops) > 0 {
		drops := make([]string, len(ex.Drops))
		for i, d := range ex.Drops {
			drops[i] = d.Weight + "x" + d.Reps
		}
		parts = append(parts, "drops:"+strings.Join(drops, ","))
	}
	if ex.SupersetWithNext {
		parts = append(parts, "~ss")
	}
	return strings.Join(parts, " ")
}
