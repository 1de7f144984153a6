package session

import (
	"errors"

	"github.com/balkashynov/wrokout/internal/auth"
)

var (
	ErrNotInProgress        = errors.New("no workout in progress")
	ErrInProgress           = errors.New("a workout is already in progress; finish or cancel it first")
	ErrNoUser               = auth.ErrNoUser
	ErrEmptyReplacementName = errors.New("New exercise name cannot be empty.")
	ErrExerciseIndex        = errors.New("exercise does not exist")
	ErrSetIndex             = errors.New("set does not exist")
	ErrDropIndex            = errors.New("drop does not exist")
	ErrNotReplacing         = errors.New("no exercise is being replaced")
)
