package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	MapboxToken   string
	PlacesBaseURL string
	PlacesTimeout time.Duration
}

// Load reads configuration from the environment, with an optional .env
// overlay for local development.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	return &Config{
		Port:          envOr("PORT", ":8080"),
		DBPath:        envOr("DB_PATH", "./data/trips.db"),
		JWTSecret:     envOr("JWT_SECRET", "change-me-in-production"),
		MapboxToken:   os.Getenv("MAPBOX_TOKEN"),
		PlacesBaseURL: os.Getenv("PLACES_BASE_URL"),
		PlacesTimeout: time.Duration(envIntOr("PLACES_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
