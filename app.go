package main

import (
	"errors"

	"questify/internal/config"
	"questify/internal/handlers"
	"questify/internal/logger"
	"questify/internal/middleware"
	"questify/internal/repositories"
	"questify/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires repositories, services, handlers and middleware into a
// Fiber app. All dependencies are passed in explicitly so tests can
// substitute an in-memory database or a nil event publisher.
func NewApp(cfg *config.Config, db *gorm.DB, log *logger.Logger, events services.EventPublisher) *fiber.App {
	userRepo := repositories.NewGORMUserRepository(db)
	questRepo := repositories.NewGORMQuestRepository(db)
	taskRepo := repositories.NewGORMTaskRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.BcryptCost, log)
	questService := services.NewQuestService(questRepo, taskRepo, events, log)
	taskService := services.NewTaskService(taskRepo, questRepo, events, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: newErrorHandler(cfg, log),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.ClientOrigin,
	}))
	app.Use(helmet.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api := app.Group("/api")

	// Public routes.
	handlers.NewUserHandler(authService).RegisterRoutes(api)
	handlers.NewAuthHandler(authService).RegisterRoutes(api)

	// Everything below requires a verified bearer token.
	protected := api.Group("", middleware.AuthRequired(authService))
	handlers.NewQuestHandler(questService).RegisterRoutes(protected)
	handlers.NewTaskHandler(taskService).RegisterRoutes(protected)

	return app
}

// newErrorHandler renders errors that escaped the handlers. Expected
// client errors are answered inline by the handlers, so anything
// arriving here is either a routing error carrying its own status code
// or an unexpected failure. In production the latter becomes a bare
// "server error"; in development the message is included.
func newErrorHandler(cfg *config.Config, log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
			if cfg.IsProduction() {
				return c.Status(code).JSON(fiber.Map{
					"error": fiber.Map{"message": "server error"},
				})
			}
		}
		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{"message": err.Error()},
		})
	}
}
