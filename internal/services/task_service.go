package services

import (
	"time"

	"questify/internal/logger"
	"questify/internal/models"
	"questify/internal/repositories"
)

// TaskUpdate carries the optional fields of a task PATCH. A nil
// Completed means the flag was absent from the request.
type TaskUpdate struct {
	TaskName  string
	TaskDesc  string
	Completed *bool
}

// TaskService handles business logic for tasks. Every operation checks
// that the target belongs to the calling user; a foreign task looks
// exactly like a missing one.
type TaskService struct {
	taskRepo  repositories.TaskRepository
	questRepo repositories.QuestRepository
	events    EventPublisher
	log       *logger.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repositories.TaskRepository, questRepo repositories.QuestRepository, events EventPublisher, log *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		questRepo: questRepo,
		events:    events,
		log:       log,
	}
}

// CreateTask stores a sanitized task under an owned quest. The parent
// quest lookup is scoped to the caller, which both verifies ownership
// and guarantees the task's user_id equals the quest's owner; the
// client never supplies it.
func (s *TaskService) CreateTask(userID, questID uint, name, desc string) (*models.Task, error) {
	if _, err := s.questRepo.GetByID(userID, questID); err != nil {
		return nil, err
	}

	task := &models.Task{
		QuestID:  questID,
		UserID:   userID,
		TaskName: Sanitize(name),
		TaskDesc: Sanitize(desc),
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask returns an owned task with sanitized fields.
func (s *TaskService) GetTask(userID, taskID uint) (*models.Task, error) {
	task, err := s.ownedTask(userID, taskID)
	if err != nil {
		return nil, err
	}
	task.TaskName = Sanitize(task.TaskName)
	task.TaskDesc = Sanitize(task.TaskDesc)
	return task, nil
}

// UpdateTask applies a partial update to an owned task, mirroring
// UpdateQuest semantics. Flipping completed to true publishes a
// task.completed event on the transition only.
func (s *TaskService) UpdateTask(userID, taskID uint, upd TaskUpdate) error {
	current, err := s.ownedTask(userID, taskID)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if name := Sanitize(upd.TaskName); name != "" {
		fields["task_name"] = name
	}
	if desc := Sanitize(upd.TaskDesc); desc != "" {
		fields["task_desc"] = desc
	}
	if upd.Completed != nil {
		fields["completed"] = *upd.Completed
	}
	if len(fields) == 0 {
		return ErrNoUpdateValues
	}
	fields["date_modified"] = time.Now()

	if err := s.taskRepo.Update(taskID, fields); err != nil {
		return err
	}

	if upd.Completed != nil && *upd.Completed && !current.Completed {
		publishCompletion(s.events, s.log, "task.completed", userID, taskID)
	}
	return nil
}

// DeleteTask removes an owned task.
func (s *TaskService) DeleteTask(userID, taskID uint) error {
	if _, err := s.ownedTask(userID, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(taskID)
}

// ownedTask fetches a task and enforces that it belongs to userID.
func (s *TaskService) ownedTask(userID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	return task, nil
}
