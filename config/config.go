package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Cache    CacheConfig
	Notify   NotifyConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
	StorageBucket   string
}

// CacheConfig configures the optional Redis cache for the public project
// listing. Leaving Addr empty disables caching entirely.
type CacheConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
	WarmerCron string
}

// NotifyConfig configures the optional Resend notification email sent to the
// site owner when a contact message arrives. Leaving ResendAPIKey empty
// disables notifications.
type NotifyConfig struct {
	ResendAPIKey string
	FromAddress  string
	OwnerAddress string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			StorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", ""),
		},
		Cache: CacheConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			TTLSeconds: getEnvAsInt("PROJECTS_CACHE_TTL_SECONDS", 300),
			WarmerCron: getEnv("PROJECTS_CACHE_WARMER_CRON", "0 */10 * * * *"),
		},
		Notify: NotifyConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromAddress:  getEnv("CONTACT_NOTIFY_FROM", ""),
			OwnerAddress: getEnv("CONTACT_NOTIFY_TO", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	if c.Firebase.StorageBucket == "" {
		return fmt.Errorf("FIREBASE_STORAGE_BUCKET is required")
	}

	if c.Notify.ResendAPIKey != "" && c.Notify.OwnerAddress == "" {
		return fmt.Errorf("CONTACT_NOTIFY_TO is required when RESEND_API_KEY is set")
	}

	return nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
