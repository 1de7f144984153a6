package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/wrokout/internal/models"
)

// ListTemplates returns the user's templates ordered by position, then name
func (s *Store) ListTemplates(ctx context.Context, userID string) ([]models.WorkoutTemplate, error) {
	var templates []models.WorkoutTemplate
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// GetTemplate returns one template by id
func (s *Store) GetTemplate(ctx context.Context, userID, id string) (*models.WorkoutTemplate, error) {
	var tmpl models.WorkoutTemplate
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&tmpl).Error
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", id, notFound(err))
	}
	return &tmpl, nil
}

// CreateTemplate stores a new template and returns its id
func (s *Store) CreateTemplate(ctx context.Context, userID string, tmpl *models.WorkoutTemplate) (string, error) {
	tmpl.ID = models.NewID()
	tmpl.UserID = userID
	if err := s.db.WithContext(ctx).Create(tmpl).Error; err != nil {
		return "", fmt.Errorf("failed to create template: %w", err)
	}
	s.broker.publish(templatesTopic(userID))
	return tmpl.ID, nil
}

// ReplaceTemplate overwrites an existing template document
func (s *Store) ReplaceTemplate(ctx context.Context, userID string, tmpl *models.WorkoutTemplate) error {
	tmpl.UserID = userID
	res := s.db.WithContext(ctx).
		Model(&models.WorkoutTemplate{}).
		Where("user_id = ? AND id = ?", userID, tmpl.ID).
		Select("name", "sort_order", "exercises", "updated_at").
		Updates(tmpl)
	if res.Error != nil {
		return fmt.Errorf("failed to update template: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("template %s: %w", tmpl.ID, ErrNotFound)
	}
	s.broker.publish(templatesTopic(userID))
	return nil
}

// DeleteTemplate removes a template. Deleting a missing id is not an error.
func (s *Store) DeleteTemplate(ctx context.Context, userID, id string) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.WorkoutTemplate{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	s.broker.publish(templatesTopic(userID))
	return nil
}

// UpdateTemplateOrders writes the order field of many templates in one
// transaction. Either every row is updated or none is.
func (s *Store) UpdateTemplateOrders(ctx context.Context, userID string, orders map[string]int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			res := tx.Model(&models.WorkoutTemplate{}).
				Where("user_id = ? AND id = ?", userID, id).
				Update("sort_order", order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("template %s: %w", id, ErrNotFound)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update template order: %w", err)
	}
	s.broker.publish(templatesTopic(userID))
	return nil
}
