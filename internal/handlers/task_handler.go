package handlers

import (
	"errors"
	"fmt"

	"questify/internal/repositories"
	"questify/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	taskService *services.TaskService
	validate    *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validate:    newValidate(),
	}
}

// RegisterRoutes registers the task routes with the Fiber app. The
// router passed in must already enforce authentication.
func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	tasks := router.Group("/tasks")
	tasks.Post("/", h.HandleCreateTask)
	tasks.Get("/:task_id", h.HandleGetTask)
	tasks.Patch("/:task_id", h.HandleUpdateTask)
	tasks.Delete("/:task_id", h.HandleDeleteTask)
}

type createTaskRequest struct {
	QuestID  uint   `json:"quest_id" validate:"required"`
	TaskName string `json:"task_name" validate:"required"`
	TaskDesc string `json:"task_desc" validate:"required"`
}

// HandleCreateTask creates a task under a quest the caller owns. The
// task's owner is derived from the parent quest, never from the body.
func (h *TaskHandler) HandleCreateTask(c *fiber.Ctx) error {
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		if msg, ok := missingFieldMessage(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	task, err := h.taskService.CreateTask(currentUserID(c), req.QuestID, req.TaskName, req.TaskDesc)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return questNotFound(c)
		}
		return err
	}

	c.Location(fmt.Sprintf("/api/tasks/%d", task.ID))
	return c.Status(fiber.StatusCreated).JSON(task)
}

// HandleGetTask returns one owned task.
func (h *TaskHandler) HandleGetTask(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return taskNotFound(c)
	}

	task, err := h.taskService.GetTask(currentUserID(c), taskID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return taskNotFound(c)
		}
		return err
	}
	return c.JSON(task)
}

type updateTaskRequest struct {
	TaskName  string `json:"task_name"`
	TaskDesc  string `json:"task_desc"`
	Completed *bool  `json:"completed"`
}

// HandleUpdateTask applies a partial update to an owned task.
func (h *TaskHandler) HandleUpdateTask(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return taskNotFound(c)
	}

	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	err := h.taskService.UpdateTask(currentUserID(c), taskID, services.TaskUpdate{
		TaskName:  req.TaskName,
		TaskDesc:  req.TaskDesc,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return taskNotFound(c)
		case errors.Is(err, services.ErrNoUpdateValues):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fiber.Map{"message": "No values submitted for update"},
			})
		default:
			return err
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteTask removes an owned task.
func (h *TaskHandler) HandleDeleteTask(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return taskNotFound(c)
	}

	if err := h.taskService.DeleteTask(currentUserID(c), taskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return taskNotFound(c)
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func taskNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
}
