package repositories

import (
	"errors"
	"fmt"

	"questify/internal/models"

	"gorm.io/gorm"
)

// questSummaryColumns computes per-quest task counts. COUNT over the
// joined task id keeps zero-task quests in the result with a count of
// zero; the CASE expression works on both postgres booleans and the
// sqlite integers used in tests.
const questSummaryColumns = "quests.id, quests.quest_name, quests.quest_desc, quests.completed, " +
	"quests.date_created, quests.date_modified, " +
	"COUNT(tasks.id) AS total_tasks, " +
	"COALESCE(SUM(CASE WHEN tasks.completed THEN 1 ELSE 0 END), 0) AS completed_tasks"

// GORMQuestRepository is a GORM implementation of QuestRepository.
type GORMQuestRepository struct {
	db *gorm.DB
}

// NewGORMQuestRepository creates a new instance of GORMQuestRepository.
func NewGORMQuestRepository(db *gorm.DB) *GORMQuestRepository {
	return &GORMQuestRepository{db: db}
}

func (r *GORMQuestRepository) summaryQuery(userID uint) *gorm.DB {
	return r.db.Model(&models.Quest{}).
		Select(questSummaryColumns).
		Joins("LEFT JOIN tasks ON tasks.quest_id = quests.id").
		Where("quests.user_id = ?", userID).
		Group("quests.id")
}

// ListByUser returns every quest owned by userID with aggregate counts.
func (r *GORMQuestRepository) ListByUser(userID uint) ([]models.QuestSummary, error) {
	summaries := make([]models.QuestSummary, 0)
	if err := r.summaryQuery(userID).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list quests for user %d: %w", userID, err)
	}
	return summaries, nil
}

// GetByID returns one owned quest with aggregate counts. A quest that
// exists but belongs to someone else yields ErrNotFound, same as a
// missing row.
func (r *GORMQuestRepository) GetByID(userID, questID uint) (*models.QuestSummary, error) {
	var summary models.QuestSummary
	err := r.summaryQuery(userID).
		Where("quests.id = ?", questID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quest %d: %w", questID, err)
	}
	return &summary, nil
}

// Create inserts a new quest.
func (r *GORMQuestRepository) Create(quest *models.Quest) error {
	if err := r.db.Create(quest).Error; err != nil {
		return fmt.Errorf("failed to create quest: %w", err)
	}
	return nil
}

// Update applies a partial column update to a quest.
func (r *GORMQuestRepository) Update(questID uint, fields map[string]interface{}) error {
	res := r.db.Model(&models.Quest{}).Where("id = ?", questID).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update quest %d: %w", questID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a quest and its child tasks in one transaction.
// Orphaned tasks would be unreachable through the API and never
// reclaimed, so deletion cascades.
func (r *GORMQuestRepository) Delete(questID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quest_id = ?", questID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Quest{}, questID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete quest %d: %w", questID, err)
	}
	return nil
}
