package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Remote content backend
	CMSBaseURL  string
	CMSAPIToken string

	// Staff auth
	JWTSecret string

	// Server
	Port           string
	Environment    string
	AllowedOrigins []string
}

// Load reads configuration from the environment, with `.env.<GO_ENV>` and
// `.env` as fallbacks for local development. Deployed environments set the
// variables directly.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	if err := godotenv.Load(fmt.Sprintf(".env.%s", env)); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	}

	cfg := &Config{
		CMSBaseURL:     getEnv("CMS_BASE_URL", ""),
		CMSAPIToken:    getEnv("CMS_API_TOKEN", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.CMSBaseURL == "" {
		return fmt.Errorf("CMS_BASE_URL is required")
	}
	if c.CMSAPIToken == "" {
		return fmt.Errorf("CMS_API_TOKEN is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
