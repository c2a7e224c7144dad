// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	JWTSecretKey string
	DatabasePath string
	// Generative content provider (OpenAI-compatible endpoint).
	ContentAPIKey  string
	ContentBaseURL string
	ContentModel   string
	Environment    string
}

// Load reads configuration from environment variables or a .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		JWTSecretKey:   getEnv("JWT_SECRET_KEY", ""),
		DatabasePath:   getEnv("DATABASE_PATH", "mentorhub.db"),
		ContentAPIKey:  getEnv("CONTENT_API_KEY", ""),
		ContentBaseURL: getEnv("CONTENT_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
		ContentModel:   getEnv("CONTENT_MODEL", "gemini-2.5-flash"),
		Environment:    env,
	}

	// Fail fast in production when secrets are missing. The content key is
	// deliberately not required: the generator falls back to templates.
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
