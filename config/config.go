package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Origins allowed to call the API from a browser
	AllowedOrigins []string
	// Contact form
	ContactEmailTo      string
	ContactMaxBodyBytes int
	// Docs
	SwaggerEnabled bool
}

func LoadConfig() (*Config, error) {
	// .env is optional; deployed environments set real variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}),
		ContactEmailTo:      getEnv("CONTACT_EMAIL_TO", "hello@example.com"),
		ContactMaxBodyBytes: getEnvInt("CONTACT_MAX_BODY_BYTES", 64<<10),
		SwaggerEnabled:      getEnvBool("SWAGGER_ENABLED", true),
	}

	if cfg.ContactMaxBodyBytes <= 0 {
		log.Printf("WARNING: CONTACT_MAX_BODY_BYTES=%d is not positive, using 65536", cfg.ContactMaxBodyBytes)
		cfg.ContactMaxBodyBytes = 64 << 10
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
