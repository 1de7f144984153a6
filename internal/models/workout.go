package models

import "time"

// LoggedSet is the actual performance of one set
type LoggedSet struct {
	Reps             string `json:"reps"`
	Weight           string `json:"weight"`
	Completed        bool   `json:"completed"`
	DurationAchieved *int   `json:"durationAchieved,omitempty"`
	Drops            []Drop `json:"drops,omitempty"`
}

// ActiveExercise is an ExerciseTarget extended with session state
type ActiveExercise struct {
	ExerciseTarget
	LoggedSets          []LoggedSet `json:"loggedSets"`
	IsSkipped           bool        `json:"isSkipped"`
	PreviousPerformance *string     `json:"previousPerformance,omitempty"`
}

// ActiveWorkout is the in-memory state of a running session
type ActiveWorkout struct {
	TemplateID  string
	Name        string
	StartTime   time.Time
	Exercises   []ActiveExercise
	IsCompleted bool
	BodyWeight  string
	Notes       string
}

// WorkoutLog is the persisted record of a finished session
type WorkoutLog struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string           `gorm:"index;not null" json:"-"`
	TemplateID  string           `gorm:"index" json:"templateId"`
	Name        string           `json:"name"`
	StartTime   time.Time        `gorm:"index;not null" json:"startTime"`
	EndTime     *time.Time       `json:"endTime"`
	IsCompleted bool             `gorm:"default:false" json:"isCompleted"`
	BodyWeight  string           `json:"bodyWeight"`
	Notes       string           `json:"notes"`
	Exercises   []ActiveExercise `gorm:"serializer:json" json:"exercises"`
}

// EmptySet returns a pristine, not yet logged set for the exercise.
// Drop sets get one empty drop per planned drop.
func EmptySet(target ExerciseTarget) LoggedSet {
	set := LoggedSet{}
	if target.SetType.Normalize() == SetDropset {
		set.Drops = make([]Drop, len(target.Drops))
	}
	return set
}

// CompletedCount returns how many sets of the exercise are logged
func (e ActiveExercise) CompletedCount() int {
	n := 0
	for _, s := range e.LoggedSets {
		if s.Completed {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the set
func (s LoggedSet) Clone() LoggedSet {
	c := s
	if s.DurationAchieved != nil {
		c.DurationAchieved = IntPtr(*s.DurationAchieved)
	}
	if s.Drops != nil {
		c.Drops = append([]Drop(nil), s.Drops...)
	}
	return c
}

// Clone returns a deep copy of the exercise and its sets
func (e ActiveExercise) Clone() ActiveExercise {
	c := e
	c.ExerciseTarget = e.ExerciseTarget.Clone()
	if e.LoggedSets != nil {
		c.LoggedSets = make([]LoggedSet, len(e.LoggedSets))
		for i, s := range e.LoggedSets {
			c.LoggedSets[i] = s.Clone()
		}
	}
	if e.PreviousPerformance != nil {
		p := *e.PreviousPerformance
		c.PreviousPerformance = &p
	}
	return c
}

// Clone returns a deep copy of the workout
func (w ActiveWorkout) Clone() ActiveWorkout {
	c := w
	c.Exercises = cloneExercises(w.Exercises)
	return c
}

// Clone returns a deep copy of the log
func (l WorkoutLog) Clone() WorkoutLog {
	c := l
	if l.EndTime != nil {
		end := *l.EndTime
		c.EndTime = &end
	}
	c.Exercises = cloneExercises(l.Exercises)
	return c
}

func cloneExercises(in []ActiveExercise) []ActiveExercise {
	if in == nil {
		return nil
	}
	out := make([]ActiveExercise, len(in))
	for i, ex := range in {
		out[i] = ex.Clone()
	}
	return out
}
