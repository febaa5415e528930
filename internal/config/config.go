package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	RedisURL      string
	PublicBaseURL string // Public base for returned short URLs (falls back to request host)
	Port          string
	Environment   string // "development" or "production"

	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterBaseURL string

	ClientBuildDir string // Directory with the built frontend; empty disables static serving

	AllowedOrigins []string // CORS allow-list

	RateLimitRPS          float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst        int     // Burst size for rate limiting
	RateLimitShortenRPS   float64 // Rate limit for URL shortening (stricter, each call hits the model)
	RateLimitShortenBurst int     // Burst size for URL shortening
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		Port:          getEnv("PORT", "3001"),
		Environment:   getEnv("APP_ENV", "development"),

		OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "x-ai/grok-4-fast:free"),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),

		ClientBuildDir: getEnv("CLIENT_BUILD_DIR", ""),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"https://link-sense-ai-app.vercel.app",
			"http://localhost:3000",
		}),

		RateLimitRPS:          getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:        getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitShortenRPS:   getEnvFloat("RATE_LIMIT_SHORTEN_RPS", 2),
		RateLimitShortenBurst: getEnvInt("RATE_LIMIT_SHORTEN_BURST", 5),
	}
}

// IsProduction reports whether the server runs in production mode. It affects
// the protocol inferred for short URLs and the log format.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
