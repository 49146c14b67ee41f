package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Store configuration
	StoreType string // json, memory, sqlite, mysql, postgres, sqlserver
	DataDir   string // directory for the json store collections

	// Database configuration (database-backed stores only)
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Admin gate configuration
	AdminPassword   string
	SessionTTLHours int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		StoreType:         getEnv("STORE_TYPE", "json"),
		DataDir:           getEnv("DATA_DIR", "data"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		SessionTTLHours:   getEnvAsInt("SESSION_TTL_HOURS", 24),
	}

	// Validate required fields
	switch cfg.StoreType {
	case "json", "memory":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("DATA_DIR is required for the json store")
		}
	case "sqlite":
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("DB_DATABASE is required (sqlite file path)")
		}
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("DB_DATABASE is required")
		}
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.StoreType)
	}

	if cfg.SessionTTLHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
