// Package plans creates, edits, orders and deletes workout templates.
package plans

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
	"github.com/balkashynov/wrokout/internal/reorder"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=plans_test

// Store is the template half of the document store
type Store interface {
	ListTemplates(ctx context.Context, userID string) ([]models.WorkoutTemplate, error)
	GetTemplate(ctx context.Context, userID, id string) (*models.WorkoutTemplate, error)
	CreateTemplate(ctx context.Context, userID string, tmpl *models.WorkoutTemplate) (string, error)
	ReplaceTemplate(ctx context.Context, userID string, tmpl *models.WorkoutTemplate) error
	DeleteTemplate(ctx context.Context, userID, id string) error
	UpdateTemplateOrders(ctx context.Context, userID string, orders map[string]int) error
	WatchTemplates(ctx context.Context, userID string) (<-chan []models.WorkoutTemplate, error)
}

// Service manages the current user's workout templates
type Service struct {
	store Store
	users auth.Provider
	log   *log.Entry
}

// NewService returns a template service over store
func NewService(store Store, users auth.Provider) *Service {
	return &Service{
		store: store,
		users: users,
		log:   log.WithField("component", "plans"),
	}
}

func (s *Service) userID(ctx context.Context) (string, error) {
	u, err := s.users.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

// List returns the templates in display order
func (s *Service) List(ctx context.Context) ([]models.WorkoutTemplate, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListTemplates(ctx, uid)
}

// Watch streams the template list, once now and again after every change,
// until ctx is done
func (s *Service) Watch(ctx context.Context) (<-chan []models.WorkoutTemplate, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.WatchTemplates(ctx, uid)
}

// Get returns one template by id
func (s *Service) Get(ctx context.Context, id string) (*models.WorkoutTemplate, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.store.GetTemplate(ctx, uid, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrTemplateNotFound
	}
	return tmpl, err
}

// Find picks a template from list by 1-based position, id, or name
// (case-insensitive)
func Find(list []models.WorkoutTemplate, ref string) (*models.WorkoutTemplate, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(list) {
		return &list[n-1], nil
	}
	for i := range list {
		if list[i].ID == ref {
			return &list[i], nil
		}
	}
	for i := range list {
		if strings.EqualFold(list[i].Name, ref) {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, ref)
}

// Resolve loads the templates and finds ref among them
func (s *Service) Resolve(ctx context.Context, ref string) (*models.WorkoutTemplate, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Find(list, ref)
}

// NewDraft returns an unsaved template placed after the existing ones,
// with one default exercise
func NewDraft(existing []models.WorkoutTemplate) models.WorkoutTemplate {
	return models.WorkoutTemplate{
		Order:     nextOrder(existing),
		Exercises: []models.ExerciseTarget{models.DefaultExercise()},
	}
}

func nextOrder(existing []models.WorkoutTemplate) int {
	if len(existing) == 0 {
		return 0
	}
	highest := existing[0].Order
	for _, t := range existing[1:] {
		if t.Order > highest {
			highest = t.Order
		}
	}
	return highest + 1
}

// Validate checks a template before it is saved
func Validate(tmpl *models.WorkoutTemplate) error {
	if tmpl == nil {
		return ErrNoTemplate
	}
	if strings.TrimSpace(tmpl.Name) == "" {
		return ErrTemplateNameRequired
	}
	for i, ex := range tmpl.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return &ExerciseNameError{Position: i + 1}
		}
	}
	return nil
}

// Save validates and stores a template: new ones are created, templates
// with an id are replaced. It returns the template id.
func (s *Service) Save(ctx context.Context, tmpl *models.WorkoutTemplate) (string, error) {
	if err := Validate(tmpl); err != nil {
		return "", err
	}
	uid, err := s.userID(ctx)
	if err != nil {
		return "", fmt.Errorf("Cannot save: %w", err)
	}

	toSave := tmpl.Clone()
	toSave.Name = strings.TrimSpace(toSave.Name)
	toSave.Exercises = toSave.Exercises[:0]
	for _, ex := range tmpl.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			continue
		}
		ex = ex.Clone()
		if ex.ID == "" {
			ex.ID = models.NewID()
		}
		ex.SetType = ex.SetType.Normalize()
		toSave.Exercises = append(toSave.Exercises, ex)
	}

	entry := s.log.WithField("name", toSave.Name)
	if toSave.ID == "" {
		if toSave.Order == 0 {
			existing, err := s.store.ListTemplates(ctx, uid)
			if err != nil {
				return "", fmt.Errorf("Error saving workout: %w", err)
			}
			toSave.Order = nextOrder(existing)
		}
		id, err := s.store.CreateTemplate(ctx, uid, &toSave)
		if err != nil {
			entry.WithError(err).Error("creating template failed")
			return "", fmt.Errorf("Error saving workout: %w", err)
		}
		entry.WithField("id", id).Info("template created")
		return id, nil
	}

	if err := s.store.ReplaceTemplate(ctx, uid, &toSave); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrTemplateNotFound
		}
		entry.WithError(err).Error("updating template failed")
		return "", fmt.Errorf("Error saving workout: %w", err)
	}
	entry.WithField("id", toSave.ID).Info("template updated")
	return toSave.ID, nil
}

// Delete removes a template. Logs made from it are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTemplate(ctx, uid, id); err != nil {
		s.log.WithError(err).WithField("id", id).Error("deleting template failed")
		return fmt.Errorf("Error deleting workout plan: %w", err)
	}
	s.log.WithField("id", id).Info("template deleted")
	return nil
}

// Reorder moves a template within list and persists every template's new
// position in one batch. The reordered list is returned even when the
// batch fails; the caller keeps showing it and reports the error.
func (s *Service) Reorder(ctx context.Context, list []models.WorkoutTemplate, from, to int) ([]models.WorkoutTemplate, error) {
	if from == to || from < 0 || to < 0 || from >= len(list) || to >= len(list) {
		return list, nil
	}
	moved := reorder.Move(list, from, to)

	orders := make(map[string]int, len(moved))
	for i := range moved {
		moved[i].Order = i
		if moved[i].ID != "" {
			orders[moved[i].ID] = i
		}
	}

	uid, err := s.userID(ctx)
	if err != nil {
		return moved, err
	}
	if err := s.store.UpdateTemplateOrders(ctx, uid, orders); err != nil {
		s.log.WithError(err).Error("saving template order failed")
		return moved, fmt.Errorf("%w (%v)", ErrOrderNotSaved, err)
	}
	return moved, nil
}
