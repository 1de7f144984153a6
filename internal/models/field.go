package models

import (
	"fmt"
	"strconv"
	"strings"
)

// SetField names an editable value of a logged set
type SetField string

const (
	FieldReps     SetField = "reps"
	FieldWeight   SetField = "weight"
	FieldDuration SetField = "duration"
)

// ParseSetField maps user input to a SetField
func ParseSetField(s string) (SetField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reps", "r":
		return FieldReps, nil
	case "weight", "w", "lbs":
		return FieldWeight, nil
	case "duration", "time", "secs", "d":
		return FieldDuration, nil
	}
	return "", fmt.Errorf("unknown set field %q (use reps, weight or duration)", s)
}

// Set writes value into the named field. An empty duration clears it.
func (s *LoggedSet) Set(field SetField, value string) error {
	switch field {
	case FieldReps:
		s.Reps = value
	case FieldWeight:
		s.Weight = value
	case FieldDuration:
		value = strings.TrimSuffix(strings.TrimSpace(value), "s")
		if value == "" {
			s.DurationAchieved = nil
			return nil
		}
		secs, err := strconv.Atoi(value)
		if err != nil || secs < 0 {
			return fmt.Errorf("invalid duration %q", value)
		}
		s.DurationAchieved = IntPtr(secs)
	default:
		return fmt.Errorf("unknown set field %q", field)
	}
	return nil
}

// DropPatch holds the drop values to merge; nil fields are left alone
type DropPatch struct {
	Weight *string
	Reps   *string
}

// SetDrop merges patch into drop i. A set without drop entries is first
// given planned empty drops so the index can be addressed.
func (s *LoggedSet) SetDrop(i int, patch DropPatch, planned int) error {
	if len(s.Drops) == 0 && planned > 0 {
		s.Drops = make([]Drop, planned)
	}
	if i < 0 || i >= len(s.Drops) {
		return fmt.Errorf("drop #%d does not exist", i+1)
	}
	if patch.Weight != nil {
		s.Drops[i].Weight = *patch.Weight
	}
	if patch.Reps != nil {
		s.Drops[i].Reps = *patch.Reps
	}
	return nil
}
