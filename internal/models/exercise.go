package models

import (
	"time"

	"github.com/google/uuid"
)

// Drop is one weight/reps step of a drop set
type Drop struct {
	Weight string `json:"weight"`
	Reps   string `json:"reps"`
}

// ExerciseTarget is one planned exercise inside a template
type ExerciseTarget struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	SetType          SetType `json:"setType"`
	TargetSets       int     `json:"targetSets"`
	TargetRepsMin    *int    `json:"targetRepsMin,omitempty"`
	TargetRepsMax    *int    `json:"targetRepsMax,omitempty"`
	TargetWeight     string  `json:"targetWeight,omitempty"`
	TargetDuration   *int    `json:"targetDuration,omitempty"` // seconds
	Drops            []Drop  `json:"drops,omitempty"`
	SupersetWithNext bool    `json:"supersetWithNext"`
}

// WorkoutTemplate is a named, ordered plan of exercises owned by one user
type WorkoutTemplate struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    string           `gorm:"index;not null" json:"-"`
	Name      string           `gorm:"not null" json:"name"`
	Order     int              `gorm:"column:sort_order;default:0" json:"order"`
	Exercises []ExerciseTarget `gorm:"serializer:json" json:"exercises"`
}

// DefaultExercise returns the exercise a new template row starts with
func DefaultExercise() ExerciseTarget {
	return ExerciseTarget{
		ID:             NewID(),
		SetType:        SetStandard,
		TargetSets:     3,
		TargetRepsMin:  IntPtr(8),
		TargetRepsMax:  IntPtr(12),
		TargetDuration: IntPtr(60),
		Drops:          []Drop{{}},
	}
}

// NewID returns a fresh opaque identifier
func NewID() string {
	return uuid.NewString()
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// Clone returns a deep copy of the exercise
func (e ExerciseTarget) Clone() ExerciseTarget {
	c := e
	if e.TargetRepsMin != nil {
		c.TargetRepsMin = IntPtr(*e.TargetRepsMin)
	}
	if e.TargetRepsMax != nil {
		c.TargetRepsMax = IntPtr(*e.TargetRepsMax)
	}
	if e.TargetDuration != nil {
		c.TargetDuration = IntPtr(*e.TargetDuration)
	}
	if e.Drops != nil {
		c.Drops = append([]Drop(nil), e.Drops...)
	}
	return c
}

// Clone returns a deep copy of the template
func (t WorkoutTemplate) Clone() WorkoutTemplate {
	c := t
	if t.Exercises != nil {
		c.Exercises = make([]ExerciseTarget, len(t.Exercises))
		for i, ex := range t.Exercises {
			c.Exercises[i] = ex.Clone()
		}
	}
	return c
}
