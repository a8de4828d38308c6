package handlers

import (
	"errors"
	"fmt"

	"questify/internal/repositories"
	"questify/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// QuestHandler handles HTTP requests for quests.
type QuestHandler struct {
	questService *services.QuestService
	validate     *validator.Validate
}

// NewQuestHandler creates a new QuestHandler.
func NewQuestHandler(questService *services.QuestService) *QuestHandler {
	return &QuestHandler{
		questService: questService,
		validate:     newValidate(),
	}
}

// RegisterRoutes registers the quest routes with the Fiber app. The
// router passed in must already enforce authentication.
func (h *QuestHandler) RegisterRoutes(router fiber.Router) {
	quests := router.Group("/quests")
	quests.Get("/", h.HandleListQuests)
	quests.Post("/", h.HandleCreateQuest)
	quests.Get("/:quest_id", h.HandleGetQuest)
	quests.Patch("/:quest_id", h.HandleUpdateQuest)
	quests.Delete("/:quest_id", h.HandleDeleteQuest)
}

// HandleListQuests returns every quest owned by the caller, each with
// aggregate task counts.
func (h *QuestHandler) HandleListQuests(c *fiber.Ctx) error {
	quests, err := h.questService.ListQuests(currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(quests)
}

type createQuestRequest struct {
	QuestName string `json:"quest_name" validate:"required"`
	QuestDesc string `json:"quest_desc" validate:"required"`
}

// HandleCreateQuest creates a quest for the caller and returns it with
// its (zero) aggregate counts.
func (h *QuestHandler) HandleCreateQuest(c *fiber.Ctx) error {
	var req createQuestRequest
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

	quest, err := h.questService.CreateQuest(currentUserID(c), req.QuestName, req.QuestDesc)
	if err != nil {
		return err
	}

	c.Location(fmt.Sprintf("/api/quests/%d", quest.ID))
	return c.Status(fiber.StatusCreated).JSON(quest)
}

// HandleGetQuest returns one owned quest and its tasks. A quest that
// exists under another user is indistinguishable from a missing one.
func (h *QuestHandler) HandleGetQuest(c *fiber.Ctx) error {
	questID, ok := parseIDParam(c, "quest_id")
	if !ok {
		return questNotFound(c)
	}

	quest, tasks, err := h.questService.GetQuest(currentUserID(c), questID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return questNotFound(c)
		}
		return err
	}

	return c.JSON(fiber.Map{
		"quest": quest,
		"tasks": tasks,
	})
}

type updateQuestRequest struct {
	QuestName string `json:"quest_name"`
	QuestDesc string `json:"quest_desc"`
	Completed *bool  `json:"completed"`
}

// HandleUpdateQuest applies a partial update to an owned quest.
func (h *QuestHandler) HandleUpdateQuest(c *fiber.Ctx) error {
	questID, ok := parseIDParam(c, "quest_id")
	if !ok {
		return questNotFound(c)
	}

	var req updateQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	err := h.questService.UpdateQuest(currentUserID(c), questID, services.QuestUpdate{
		QuestName: req.QuestName,
		QuestDesc: req.QuestDesc,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return questNotFound(c)
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

// HandleDeleteQuest removes an owned quest and its tasks.
func (h *QuestHandler) HandleDeleteQuest(c *fiber.Ctx) error {
	questID, ok := parseIDParam(c, "quest_id")
	if !ok {
		return questNotFound(c)
	}

	if err := h.questService.DeleteQuest(currentUserID(c), questID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return questNotFound(c)
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func questNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quest not found"})
}
