package services

import (
	"time"

	"questify/internal/logger"
	"questify/internal/models"
	"questify/internal/repositories"
)

// QuestUpdate carries the optional fields of a quest PATCH. A nil
// Completed means the flag was absent from the request.
type QuestUpdate struct {
	QuestName string
	QuestDesc string
	Completed *bool
}

// QuestService handles business logic for quests: ownership scoping,
// sanitization, aggregate reads and completion events.
type QuestService struct {
	questRepo repositories.QuestRepository
	taskRepo  repositories.TaskRepository
	events    EventPublisher
	log       *logger.Logger
}

// NewQuestService creates a new QuestService.
func NewQuestService(questRepo repositories.QuestRepository, taskRepo repositories.TaskRepository, events EventPublisher, log *logger.Logger) *QuestService {
	return &QuestService{
		questRepo: questRepo,
		taskRepo:  taskRepo,
		events:    events,
		log:       log,
	}
}

// ListQuests returns every quest owned by userID with task counts,
// free-text fields sanitized.
func (s *QuestService) ListQuests(userID uint) ([]models.QuestSummary, error) {
	quests, err := s.questRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range quests {
		quests[i].QuestName = Sanitize(quests[i].QuestName)
		quests[i].QuestDesc = Sanitize(quests[i].QuestDesc)
	}
	return quests, nil
}

// GetQuest returns one owned quest with its tasks. Absent and foreign
// quests are both repositories.ErrNotFound.
func (s *QuestService) GetQuest(userID, questID uint) (*models.QuestSummary, []models.Task, error) {
	quest, err := s.questRepo.GetByID(userID, questID)
	if err != nil {
		return nil, nil, err
	}
	quest.QuestName = Sanitize(quest.QuestName)
	quest.QuestDesc = Sanitize(quest.QuestDesc)

	tasks, err := s.taskRepo.ListByQuest(questID)
	if err != nil {
		return nil, nil, err
	}
	for i := range tasks {
		tasks[i].TaskName = Sanitize(tasks[i].TaskName)
		tasks[i].TaskDesc = Sanitize(tasks[i].TaskDesc)
	}
	return quest, tasks, nil
}

// CreateQuest stores a sanitized quest for userID and returns it
// re-fetched with its (zero) aggregate counts.
func (s *QuestService) CreateQuest(userID uint, name, desc string) (*models.QuestSummary, error) {
	quest := &models.Quest{
		UserID:    userID,
		QuestName: Sanitize(name),
		QuestDesc: Sanitize(desc),
	}
	if err := s.questRepo.Create(quest); err != nil {
		return nil, err
	}
	return s.questRepo.GetByID(userID, quest.ID)
}

// UpdateQuest applies a partial update to an owned quest. An update
// that resolves to no effective fields is ErrNoUpdateValues. Flipping
// completed to true publishes a quest.completed event once, on the
// transition only, so re-applying the same update stays idempotent.
func (s *QuestService) UpdateQuest(userID, questID uint, upd QuestUpdate) error {
	current, err := s.questRepo.GetByID(userID, questID)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if name := Sanitize(upd.QuestName); name != "" {
		fields["quest_name"] = name
	}
	if desc := Sanitize(upd.QuestDesc); desc != "" {
		fields["quest_desc"] = desc
	}
	if upd.Completed != nil {
		fields["completed"] = *upd.Completed
	}
	if len(fields) == 0 {
		return ErrNoUpdateValues
	}
	fields["date_modified"] = time.Now()

	if err := s.questRepo.Update(questID, fields); err != nil {
		return err
	}

	if upd.Completed != nil && *upd.Completed && !current.Completed {
		publishCompletion(s.events, s.log, "quest.completed", userID, questID)
	}
	return nil
}

// DeleteQuest removes an owned quest and, within the same transaction,
// its child tasks.
func (s *QuestService) DeleteQuest(userID, questID uint) error {
	if _, err := s.questRepo.GetByID(userID, questID); err != nil {
		return err
	}
	return s.questRepo.Delete(questID)
}
