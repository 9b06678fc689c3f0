package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the API reads from the environment.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	CORSOrigins []string
}

// Load reads .env (outside production) and the process environment.
// DATABASE_URL is optional: without it the API runs on the in-memory store.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := Config{
		AppEnv:      getenv("APP_ENV", "development"),
		Port:        getenv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
