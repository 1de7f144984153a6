package plans

import (
	"errors"
	"fmt"
)

var (
	ErrTemplateNameRequired = errors.New("Workout Plan Name is required.")
	ErrNoTemplate           = errors.New("No workout data to save.")
	ErrTemplateNotFound     = errors.New("workout plan not found")
	ErrOrderNotSaved        = errors.New("Failed to save new order for workout plans. Please try again.")
)

// ExerciseNameError reports the first exercise without a name, 1-based
type ExerciseNameError struct {
	Position int
}

func (e *ExerciseNameError) Error() string {
	return fmt.Sprintf("All exercises must have a name. Exercise #%d is missing a name.", e.Position)
}
