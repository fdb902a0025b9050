package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the fallback signing key for local development. Load
// reports whether it is in use so main can warn loudly; production must set
// JWT_SECRET.
const DefaultJWTSecret = "change-me-in-production"

// Config carries all externally configurable settings. It is built once at
// startup and passed explicitly to the components that need it; nothing in
// the application reads configuration globals.
type Config struct {
	AppPort     string
	DatabaseURL string // Postgres DSN; empty selects a local SQLite file
	RabbitMQURL string // empty disables event publication
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins string
}

// Load reads configuration from environment variables with sensible
// defaults for local development.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", DefaultJWTSecret)
	viper.SetDefault("TOKEN_TTL_MINUTES", 30)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.AutomaticEnv() // Load environment variables

	return Config{
		AppPort:     viper.GetString("APP_PORT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		TokenTTL:    time.Duration(viper.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
		CORSOrigins: viper.GetString("CORS_ORIGINS"),
	}
}
