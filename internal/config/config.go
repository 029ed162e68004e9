package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BackendBaseURL string
	SessionSecret  string
	RedisURL       string
	NominatimURL   string
	AppEnv         string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	sessionSecret, exists := os.LookupEnv("SESSION_SECRET")
	if !exists || sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		BackendBaseURL: getEnv("MEDI4ALL_API_URL", "http://localhost:8000/api"),
		SessionSecret:  sessionSecret,
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		NominatimURL:   getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		AppEnv:         normalizeEnv(getEnv("APP_ENV", "production")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
