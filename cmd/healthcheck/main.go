package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/reelkeep/reeldb/internal/config"
	"github.com/reelkeep/reeldb/internal/database"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/store"
	"github.com/reelkeep/reeldb/internal/utils"
)

// Standalone health probe for containers and orchestration. Opens the
// configured store directly, then verifies the server port is accepting
// connections.
func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the persistence store
	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	// Perform health check
	result := services.HealthCheck(cfg, st)

	// Verify the server itself is listening
	if result.Status == "healthy" {
		if err := utils.PingServer(cfg.Port); err != nil {
			result.Status = "unhealthy"
			result.ErrorMessage = fmt.Sprintf("Server ping failed: %v", err)
		}
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}

// openStore opens the configured store without seeding or migrating; the
// probe only observes, it never writes.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreType {
	case "json":
		return store.NewJSONFile(cfg.DataDir)
	case "memory":
		return store.NewMemory(), nil
	default:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewDatabase(db), nil
	}
}
