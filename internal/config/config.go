package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	LogLevel    string
	Environment string
	CORSOrigins string

	// External classifier (OpenAI-compatible chat completions). Optional:
	// when no API key is set the rule-based classifier runs alone.
	ClassifierAPIKey  string
	ClassifierBaseURL string
	ClassifierModel   string

	// Outbound search throttling and analysis sizing.
	SearchInterval time.Duration
	MaxVideos      int

	// Analysis cache and background refresh.
	CacheTTL        time.Duration
	RefreshInterval time.Duration
}

func Load() *Config {
	// Best effort: absent .env is the normal production case.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		ClassifierAPIKey:  getEnv("CLASSIFIER_API_KEY", ""),
		ClassifierBaseURL: getEnv("CLASSIFIER_BASE_URL", "https://api.openai.com/v1/chat/completions"),
		ClassifierModel:   getEnv("CLASSIFIER_MODEL", "gpt-4o-mini"),

		SearchInterval: getDuration("SEARCH_INTERVAL", 200*time.Millisecond),
		MaxVideos:      getInt("MAX_VIDEOS", 50),

		CacheTTL:        getDuration("CACHE_TTL", 4*time.Hour),
		RefreshInterval: getDuration("REFRESH_INTERVAL", 30*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
