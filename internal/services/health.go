package services

import (
	"fmt"
	"log"

	"github.com/reelkeep/reeldb/internal/config"
	"github.com/reelkeep/reeldb/internal/store"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Store        string            `json:"store"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck verifies the persistence store is reachable.
func HealthCheck(cfg *config.Config, s store.Store) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	if err := s.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Store = "unreachable"
		result.Details["store_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Store ping failed: %v", err)
		log.Printf("Health check failed - store ping: %v", err)
		return result
	}

	result.Store = "ok"
	result.Details["store_type"] = cfg.StoreType
	switch cfg.StoreType {
	case "json", "memory":
		result.Details["data_dir"] = cfg.DataDir
	default:
		result.Details["database_name"] = cfg.DBDatabase
	}

	return result
}
