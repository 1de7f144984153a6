package history

import "errors"

var (
	// ErrPlanNotFound is returned when a log's template has been deleted
	ErrPlanNotFound = errors.New("Original workout plan not found. It may have been deleted.")
	// ErrMissingTemplateRef is returned for logs that carry no template id
	ErrMissingTemplateRef = errors.New("This workout log has no plan attached.")
	// ErrLogNotFound is returned when a log id does not exist
	ErrLogNotFound = errors.New("workout log not found")
	// ErrExerciseIndex is returned for an exercise number outside the log
	ErrExerciseIndex = errors.New("exercise does not exist in this log")
	// ErrSetIndex is returned for a set number outside the exercise
	ErrSetIndex = errors.New("set does not exist in this exercise")
)
