package plans

import (
	"fmt"

	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/reorder"
)

// Editor edits a copy of a template. Exercise moves are local; nothing is
// stored until the result is passed to Service.Save.
type Editor struct {
	tmpl models.WorkoutTemplate
}

// NewEditor starts editing a deep copy of tmpl
func NewEditor(tmpl models.WorkoutTemplate) *Editor {
	return &Editor{tmpl: tmpl.Clone()}
}

// Template returns the edited template
func (e *Editor) Template() models.WorkoutTemplate {
	return e.tmpl.Clone()
}

// Len returns the number of exercises
func (e *Editor) Len() int { return len(e.tmpl.Exercises) }

// SetName renames the template
func (e *Editor) SetName(name string) { e.tmpl.Name = name }

// AddExercise appends ex, giving it an id when it has none
func (e *Editor) AddExercise(ex models.ExerciseTarget) {
	ex = ex.Clone()
	if ex.ID == "" {
		ex.ID = models.NewID()
	}
	e.tmpl.Exercises = append(e.tmpl.Exercises, ex)
}

// RemoveExercise deletes the exercise with the given id
func (e *Editor) RemoveExercise(id string) bool {
	for i, ex := range e.tmpl.Exercises {
		if ex.ID == id {
			e.tmpl.Exercises = append(e.tmpl.Exercises[:i], e.tmpl.Exercises[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateExercise applies fn to exercise i
func (e *Editor) UpdateExercise(i int, fn func(*models.ExerciseTarget)) error {
	if i < 0 || i >= len(e.tmpl.Exercises) {
		return fmt.Errorf("exercise #%d does not exist", i+1)
	}
	fn(&e.tmpl.Exercises[i])
	return nil
}

// ToggleSuperset flips whether exercise i is done back to back with the next
func (e *Editor) ToggleSuperset(i int) error {
	return e.UpdateExercise(i, func(ex *models.ExerciseTarget) {
		ex.SupersetWithNext = !ex.SupersetWithNext
	})
}

// MoveExercise moves an exercise to another position
func (e *Editor) MoveExercise(from, to int) {
	e.tmpl.Exercises = reorder.Move(e.tmpl.Exercises, from, to)
}
