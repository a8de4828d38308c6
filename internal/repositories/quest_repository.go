package repositories

import "questify/internal/models"

// QuestRepository defines the interface for quest data access. Reads
// are scoped to an owner; summaries carry aggregate task counts.
type QuestRepository interface {
	ListByUser(userID uint) ([]models.QuestSummary, error)
	GetByID(userID, questID uint) (*models.QuestSummary, error)
	Create(quest *models.Quest) error
	Update(questID uint, fields map[string]interface{}) error
	Delete(questID uint) error
}
