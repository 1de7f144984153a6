package models

import (
	"fmt"
	"strings"
)

// SetType is the logging mode of an exercise. The set of values is closed;
// every switch over it lists all five.
type SetType string

const (
	SetStandard SetType = "standard"
	SetWarmup   SetType = "warmup"
	SetDropset  SetType = "dropset"
	SetAMRAP    SetType = "amrap"
	SetTimed    SetType = "timed"
)

// SetTypes returns all set types in display order
func SetTypes() []SetType {
	return []SetType{SetStandard, SetWarmup, SetDropset, SetAMRAP, SetTimed}
}

// ParseSetType converts user input to a SetType
func ParseSetType(s string) (SetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "std":
		return SetStandard, nil
	case "warmup", "warm-up", "wu":
		return SetWarmup, nil
	case "dropset", "drop", "drops":
		return SetDropset, nil
	case "amrap":
		return SetAMRAP, nil
	case "timed", "time":
		return SetTimed, nil
	}
	return "", fmt.Errorf("invalid set type %q (valid: standard, warmup, dropset, amrap, timed)", s)
}

// Normalize maps unknown or empty values to SetStandard, which is how
// documents written by older versions are read back.
func (t SetType) Normalize() SetType {
	switch t {
	case SetStandard, SetWarmup, SetDropset, SetAMRAP, SetTimed:
		return t
	default:
		return SetStandard
	}
}

// Label returns a short human label
func (t SetType) Label() string {
	switch t.Normalize() {
	case SetWarmup:
		return "Warm-up"
	case SetDropset:
		return "Drop set"
	case SetAMRAP:
		return "AMRAP"
	case SetTimed:
		return "Timed"
	case SetStandard:
		return "Standard"
	}
	return "Standard"
}
