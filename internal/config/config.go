package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	ListenAddr    string
	DatabaseURL   string
	AIServiceURL  string
	ScorerTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	// Best-effort .env load for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := Config{
		Env:           getenv("APP_ENV", "development"),
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AIServiceURL:  getenv("AI_SERVICE_URL", "http://localhost:5001"),
		ScorerTimeout: time.Duration(getenvInt("SCORER_TIMEOUT", 10)) * time.Second,
	}
	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}
