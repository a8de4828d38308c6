package repositories

import (
	"errors"
	"fmt"

	"questify/internal/models"

	"gorm.io/gorm"
)

// GORMTaskRepository is a GORM implementation of TaskRepository.
type GORMTaskRepository struct {
	db *gorm.DB
}

// NewGORMTaskRepository creates a new instance of GORMTaskRepository.
func NewGORMTaskRepository(db *gorm.DB) *GORMTaskRepository {
	return &GORMTaskRepository{db: db}
}

// ListByQuest returns all tasks under one quest.
func (r *GORMTaskRepository) ListByQuest(questID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := r.db.Where("quest_id = ?", questID).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks for quest %d: %w", questID, err)
	}
	return tasks, nil
}

// GetByID retrieves a task by id.
func (r *GORMTaskRepository) GetByID(taskID uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task %d: %w", taskID, err)
	}
	return &task, nil
}

// Create inserts a new task.
func (r *GORMTaskRepository) Create(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Update applies a partial column update to a task.
func (r *GORMTaskRepository) Update(taskID uint, fields map[string]interface{}) error {
	res := r.db.Model(&models.Task{}).Where("id = ?", taskID).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update task %d: %w", taskID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task.
func (r *GORMTaskRepository) Delete(taskID uint) error {
	if err := r.db.Delete(&models.Task{}, taskID).Error; err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	return nil
}
