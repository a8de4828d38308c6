package handlers

import (
	"errors"
	"fmt"

	"questify/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user registration.
type UserHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
		validate:    newValidate(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Post("/", h.HandleRegister)
}

type registerRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister handles new user registration. Policy violations and
// duplicate usernames are client errors with explicit messages; the
// password hash never appears in the response.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
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

	user, err := h.authService.Register(req.UserName, req.Password)
	if err != nil {
		var policyErr *services.PasswordPolicyError
		switch {
		case errors.As(err, &policyErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": policyErr.Error()})
		case errors.Is(err, services.ErrUserNameTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username already taken"})
		default:
			return err
		}
	}

	c.Location(fmt.Sprintf("/api/users/%d", user.ID))
	return c.Status(fiber.StatusCreated).JSON(user)
}
