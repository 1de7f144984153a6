package history

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/wrokout/internal/auth"
	"github.com/balkashynov/wrokout/internal/db"
	"github.com/balkashynov/wrokout/internal/models"
)

// Store is the part of the document store the history screens use
type Store interface {
	ListLogs(ctx context.Context, userID string) ([]models.WorkoutLog, error)
	GetLog(ctx context.Context, userID, id string) (*models.WorkoutLog, error)
	ReplaceLog(ctx context.Context, userID string, wl *models.WorkoutLog) error
	DeleteLog(ctx context.Context, userID, id string) error
	GetTemplate(ctx context.Context, userID, id string) (*models.WorkoutTemplate, error)
	WatchLogs(ctx context.Context, userID string) (<-chan []models.WorkoutLog, error)
}

// Service reads and edits the current user's saved workouts
type Service struct {
	store Store
	users auth.Provider
	log   *log.Entry
}

// NewService returns a history service over store
func NewService(store Store, users auth.Provider) *Service {
	return &Service{
		store: store,
		users: users,
		log:   log.WithField("component", "history"),
	}
}

func (s *Service) userID(ctx context.Context) (string, error) {
	u, err := s.users.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

// List returns all saved workouts, newest first
func (s *Service) List(ctx context.Context) ([]models.WorkoutLog, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListLogs(ctx, uid)
}

// Watch streams the saved workouts, newest first, until ctx is done
func (s *Service) Watch(ctx context.Context) (<-chan []models.WorkoutLog, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.WatchLogs(ctx, uid)
}

// Get returns one saved workout
func (s *Service) Get(ctx context.Context, id string) (*models.WorkoutLog, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	wl, err := s.store.GetLog(ctx, uid, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrLogNotFound
	}
	return wl, err
}

// Find picks a saved workout from logs by 1-based position or id
func Find(logs []models.WorkoutLog, ref string) (*models.WorkoutLog, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(logs) {
		return &logs[n-1], nil
	}
	for i := range logs {
		if logs[i].ID == ref {
			return &logs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLogNotFound, ref)
}

// Resolve loads the saved workouts and finds ref among them
func (s *Service) Resolve(ctx context.Context, ref string) (*models.WorkoutLog, error) {
	logs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Find(logs, ref)
}

// Save replaces a saved workout with its edited version
func (s *Service) Save(ctx context.Context, wl *models.WorkoutLog) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	if err := s.store.ReplaceLog(ctx, uid, wl); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrLogNotFound
		}
		s.log.WithError(err).WithField("log", wl.ID).Error("saving workout log failed")
		return fmt.Errorf("Error saving workout log: %w", err)
	}
	s.log.WithField("log", wl.ID).Info("workout log updated")
	return nil
}

// Delete removes a saved workout
func (s *Service) Delete(ctx context.Context, id string) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	if err := s.store.DeleteLog(ctx, uid, id); err != nil {
		s.log.WithError(err).WithField("log", id).Error("deleting workout log failed")
		return fmt.Errorf("Error deleting log: %w", err)
	}
	s.log.WithField("log", id).Info("workout log deleted")
	return nil
}

// PlanForLog returns the template a saved workout was started from
func (s *Service) PlanForLog(ctx context.Context, wl models.WorkoutLog) (*models.WorkoutTemplate, error) {
	if wl.TemplateID == "" {
		return nil, ErrMissingTemplateRef
	}
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.store.GetTemplate(ctx, uid, wl.TemplateID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrPlanNotFound
	}
	return tmpl, err
}

// Previous loads the user's history and summarises the last completed
// session of templateID
func (s *Service) Previous(ctx context.Context, templateID string) (map[string]string, error) {
	logs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return PreviousPerformance(logs, templateID), nil
}
