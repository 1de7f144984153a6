package session

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=session_test

import (
	"context"

	"github.com/balkashynov/wrokout/internal/auth"
	"github.com/balkashynov/wrokout/internal/models"
)

// LogWriter persists finished workouts
type LogWriter interface {
	CreateLog(ctx context.Context, userID string, wl *models.WorkoutLog) (string, error)
}

// UserProvider supplies the identity a finished workout is saved under
type UserProvider interface {
	CurrentUser(ctx context.Context) (auth.User, error)
}

// Notifier receives timer completion alerts
type Notifier interface {
	Notify(title, body string) error
}
