package main

import (
	"os"
	"os/signal"
	"syscall"

	"questify/internal/config"
	"questify/internal/logger"
	"questify/internal/models"
	"questify/internal/services"
	"questify/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log := logger.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// TranslateError maps driver-specific unique violations to
	// gorm.ErrDuplicatedKey, which the user repository relies on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(&models.User{}, &models.Quest{}, &models.Task{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		events = mqClient

		go func() {
			consumerLog := logger.New("consumer")
			err := mqClient.ConsumeEvents(func(msg amqp.Delivery) error {
				consumerLog.Info().RawJSON("event", msg.Body).Msg("completion event received")
				return nil
			})
			if err != nil {
				consumerLog.Error().Err(err).Msg("consumer stopped")
			}
		}()
	}

	app := NewApp(cfg, db, log, events)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.AppPort).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped")
}
