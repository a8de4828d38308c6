package repositories

import "questify/internal/models"

// TaskRepository defines the interface for task data access. Ownership
// checks happen in the service layer against the task's user_id.
type TaskRepository interface {
	ListByQuest(questID uint) ([]models.Task, error)
	GetByID(taskID uint) (*models.Task, error)
	Create(task *models.Task) error
	Update(taskID uint, fields map[string]interface{}) error
	Delete(taskID uint) error
}
