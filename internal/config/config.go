package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every externally supplied setting the application needs.
// All values come from the environment; nothing is hard-coded past the
// development defaults below.
type Config struct {
	AppPort      string
	AppEnv       string
	ClientOrigin string
	DatabaseDSN  string
	JWTSecret    string
	JWTExpiry    time.Duration
	BcryptCost   int
	RabbitMQURL  string
}

// Load reads configuration from environment variables via Viper.
// JWT_SECRET and DATABASE_DSN have no safe default and must be set.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:3000")
	v.SetDefault("JWT_EXPIRY", "3h")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("RABBITMQ_URL", "")
	v.AutomaticEnv()

	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY %q: %w", v.GetString("JWT_EXPIRY"), err)
	}

	cfg := &Config{
		AppPort:      v.GetString("APP_PORT"),
		AppEnv:       v.GetString("APP_ENV"),
		ClientOrigin: v.GetString("CLIENT_ORIGIN"),
		DatabaseDSN:  v.GetString("DATABASE_DSN"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTExpiry:    expiry,
		BcryptCost:   v.GetInt("BCRYPT_COST"),
		RabbitMQURL:  v.GetString("RABBITMQ_URL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN must be set")
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with production error
// verbosity (generic server errors, no internals leaked).
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
