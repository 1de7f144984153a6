package db

import (
	"context"
	"fmt"

	"github.com/balkashynov/wrokout/internal/models"
)

// ListLogs returns the user's workout logs, newest first
func (s *Store) ListLogs(ctx context.Context, userID string) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workout logs: %w", err)
	}
	return logs, nil
}

// GetLog returns one workout log by id
func (s *Store) GetLog(ctx context.Context, userID, id string) (*models.WorkoutLog, error) {
	var wl models.WorkoutLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&wl).Error
	if err != nil {
		return nil, fmt.Errorf("workout log %s: %w", id, notFound(err))
	}
	return &wl, nil
}

// CreateLog stores a finished workout and returns its id
func (s *Store) CreateLog(ctx context.Context, userID string, wl *models.WorkoutLog) (string, error) {
	wl.ID = models.NewID()
	wl.UserID = userID
	if err := s.db.WithContext(ctx).Create(wl).Error; err != nil {
		return "", fmt.Errorf("failed to create workout log: %w", err)
	}
	s.broker.publish(logsTopic(userID))
	return wl.ID, nil
}

// ReplaceLog overwrites an existing workout log document
func (s *Store) ReplaceLog(ctx context.Context, userID string, wl *models.WorkoutLog) error {
	wl.UserID = userID
	res := s.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Where("user_id = ? AND id = ?", userID, wl.ID).
		Select("template_id", "name", "start_time", "end_time", "is_completed",
			"body_weight", "notes", "exercises", "updated_at").
		Updates(wl)
	if res.Error != nil {
		return fmt.Errorf("failed to update workout log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("workout log %s: %w", wl.ID, ErrNotFound)
	}
	s.broker.publish(logsTopic(userID))
	return nil
}

// DeleteLog removes a workout log. Deleting a missing id is not an error.
func (s *Store) DeleteLog(ctx context.Context, userID, id string) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.WorkoutLog{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete workout log: %w", err)
	}
	s.broker.publish(logsTopic(userID))
	return nil
}
