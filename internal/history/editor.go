package history

import (
	"time"

	"github.com/balkashynov/wrokout/internal/models"
)

// LogEditor edits a copy of a saved workout. Nothing is written until the
// result of Log is passed to Service.Save.
type LogEditor struct {
	log models.WorkoutLog
}

// NewLogEditor starts editing a deep copy of wl
func NewLogEditor(wl models.WorkoutLog) *LogEditor {
	return &LogEditor{log: wl.Clone()}
}

// Log returns the edited workout
func (e *LogEditor) Log() models.WorkoutLog {
	return e.log.Clone()
}

// SetDate moves the workout to another day, keeping its time of day
func (e *LogEditor) SetDate(year int, month time.Month, day int) {
	st := e.log.StartTime
	if st.IsZero() {
		st = time.Date(year, month, day, 12, 0, 0, 0, time.Local)
		e.log.StartTime = st
		return
	}
	e.log.StartTime = time.Date(year, month, day, st.Hour(), st.Minute(), st.Second(), 0, st.Location())
}

// SetBodyWeight replaces the recorded body weight
func (e *LogEditor) SetBodyWeight(v string) { e.log.BodyWeight = v }

// SetNotes replaces the workout notes
func (e *LogEditor) SetNotes(v string) { e.log.Notes = v }

// SetField edits one value of a logged set
func (e *LogEditor) SetField(exercise, set int, field models.SetField, value string) error {
	s, err := e.set(exercise, set)
	if err != nil {
		return err
	}
	return s.Set(field, value)
}

// SetDrop edits one drop of a logged drop set
func (e *LogEditor) SetDrop(exercise, set, drop int, patch models.DropPatch) error {
	s, err := e.set(exercise, set)
	if err != nil {
		return err
	}
	return s.SetDrop(drop, patch, len(e.log.Exercises[exercise].Drops))
}

// RemoveSet deletes a logged set from an exercise
func (e *LogEditor) RemoveSet(exercise, set int) error {
	if _, err := e.set(exercise, set); err != nil {
		return err
	}
	ex := &e.log.Exercises[exercise]
	ex.LoggedSets = append(ex.LoggedSets[:set], ex.LoggedSets[set+1:]...)
	return nil
}

func (e *LogEditor) set(exercise, set int) (*models.LoggedSet, error) {
	if exercise < 0 || exercise >= len(e.log.Exercises) {
		return nil, ErrExerciseIndex
	}
	ex := &e.log.Exercises[exercise]
	if set < 0 || set >= len(ex.LoggedSets) {
		return nil, ErrSetIndex
	}
	return &ex.LoggedSets[set], nil
}
