// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Search   SearchConfig
	Log      LogConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Debug    bool
}

// SearchConfig points at the Elasticsearch cluster holding the search twins.
type SearchConfig struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration

	// ReindexRate caps documents per second pushed by a reindex; 0 means no cap.
	ReindexRate int
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name       string
	Dev        bool
	Migrations bool
	Seed       bool
}

// DSN returns the PostgreSQL connection string in key=value format.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL returns the PostgreSQL connection string in URL format.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Load reads configuration from environment variables, after merging a
// .env file when one is present. Variables already set win over the file.
// It uses sensible defaults for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "gestioneau"),
			Password: getEnv("DB_PASSWORD", "gestioneau"),
			DBName:   getEnv("DB_NAME", "gestioneau"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Debug:    getEnvBool("DB_DEBUG", false),
		},
		Search: SearchConfig{
			URL:         getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
			Username:    getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:    getEnv("ELASTICSEARCH_PASSWORD", ""),
			Timeout:     time.Duration(getEnvInt("ELASTICSEARCH_TIMEOUT", 10)) * time.Second,
			ReindexRate: getEnvInt("ELASTICSEARCH_REINDEX_RATE", 200),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		App: AppConfig{
			Name:       getEnv("APP_NAME", "gestioneau"),
			Dev:        getEnvBool("DEV", true),
			Migrations: getEnvBool("MIGRATIONS", false),
			Seed:       getEnvBool("DB_SEED", false),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
