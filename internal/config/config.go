package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Resend   ResendConfig
	Reset    ResetConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type DatabaseConfig struct {
	URL      string // Full database URL
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
}

type ResendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type ResetConfig struct {
	// BaseURL is the password-reset page; the issued token is appended as
	// the final path segment.
	BaseURL string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Database: parseDatabaseConfig(),
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		Resend: ResendConfig{
			APIKey:    getEnv("RESEND_API_KEY", ""),
			FromEmail: getEnv("RESEND_FROM_EMAIL", "noreply@aindobookhaven.com"),
			FromName:  getEnv("RESEND_FROM_NAME", "Aindo Book Haven Stores"),
		},
		Reset: ResetConfig{
			BaseURL: getEnv("RESET_PASSWORD_URL", "http://localhost:3000/reset-password"),
		},
	}

	return config, nil
}

// parseDatabaseConfig builds the database configuration, preferring a full
// DATABASE_URL over individual components.
func parseDatabaseConfig() DatabaseConfig {
	cfg := DatabaseConfig{
		URL:      getEnv("DATABASE_URL", ""),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvAsInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "bookhaven"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if cfg.URL == "" {
		return cfg
	}

	// Fill in the components from the URL so either form can be used
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return cfg
	}

	if parsed.Hostname() != "" {
		cfg.Host = parsed.Hostname()
	}
	if parsed.Port() != "" {
		if port, err := strconv.Atoi(parsed.Port()); err == nil {
			cfg.Port = port
		}
	}
	if parsed.User != nil {
		cfg.User = parsed.User.Username()
		if password, ok := parsed.User.Password(); ok {
			cfg.Password = password
		}
	}
	if name := strings.TrimPrefix(parsed.Path, "/"); name != "" {
		cfg.DBName = name
	}
	if mode := parsed.Query().Get("sslmode"); mode != "" {
		cfg.SSLMode = mode
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
