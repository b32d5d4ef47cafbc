package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	AppSecret    string
	FrontendURL  string
	StripeSecret string
	KafkaBroker  string
	KafkaTopic   string
}

// Load reads the environment, preferring a local .env outside production.
func Load() Config {
	if os.Getenv("ENV") != "prod" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		AppSecret:    os.Getenv("APP_SECRET"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		StripeSecret: os.Getenv("STRIPE_SECRET"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}
	return cfg
}
