package integration_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/glebarez/sqlite"
	"github.com/reelkeep/reeldb/internal/config"
	"github.com/reelkeep/reeldb/internal/database"
	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/store"
	"github.com/reelkeep/reeldb/internal/types"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteStore builds a DatabaseStore over an in-memory SQLite database.
// The pure-Go driver keeps this test runnable without cgo or Docker.
func setupSQLiteStore(t *testing.T) *store.DatabaseStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(&models.Movie{}, &models.Review{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store.NewDatabase(db)
}

// TestDatabaseStoreCatalogFlow exercises the catalog end to end against a
// database-backed store: create, review, aggregate, cascade delete.
func TestDatabaseStoreCatalogFlow(t *testing.T) {
	s := setupSQLiteStore(t)
	catalog := services.NewCatalog(s)

	movie, err := catalog.CreateMovie(&models.CreateMovieRequest{
		Title:     "Integration",
		Year:      2022,
		Genre:     []string{"Drama", "Mystery"},
		Rating:    7.2,
		Director:  "Test Director",
		Runtime:   101,
		Synopsis:  "A movie that only exists in a test database.",
		Cast:      []string{"One", "Two"},
		PosterURL: "https://example.com/integration.jpg",
	})
	if err != nil {
		t.Fatalf("Failed to create movie: %v", err)
	}
	if movie.ID != 1 {
		t.Errorf("Expected id 1, got %d", movie.ID)
	}

	for i, rating := range []int{5, 3} {
		_, err := catalog.CreateReview(&models.CreateReviewRequest{
			MovieID:    1,
			UserName:   fmt.Sprintf("user%d", i+1),
			Rating:     types.FlexInt(rating),
			ReviewText: "Database-backed review.",
		})
		if err != nil {
			t.Fatalf("Failed to create review: %v", err)
		}
	}

	got, err := catalog.GetMovie(1)
	if err != nil {
		t.Fatalf("Failed to get movie: %v", err)
	}
	if got.ReviewCount != 2 {
		t.Errorf("Expected reviewCount 2, got %d", got.ReviewCount)
	}
	if got.AverageReviewRating != 4 {
		t.Errorf("Expected average 4, got %v", got.AverageReviewRating)
	}
	if len(got.Genre) != 2 || got.Genre[0] != "Drama" {
		t.Errorf("Expected genre list to survive the database roundtrip, got %v", got.Genre)
	}

	if err := catalog.DeleteMovie(1); err != nil {
		t.Fatalf("Failed to delete movie: %v", err)
	}

	reviews, err := s.LoadReviews()
	if err != nil {
		t.Fatalf("Failed to load reviews: %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("Expected cascade to remove reviews, got %d left", len(reviews))
	}
}

// TestDatabaseStoreReplaceAll verifies a save fully replaces the table.
func TestDatabaseStoreReplaceAll(t *testing.T) {
	s := setupSQLiteStore(t)

	first := []models.Movie{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	if err := s.SaveMovies(first); err != nil {
		t.Fatalf("Failed to save movies: %v", err)
	}

	second := []models.Movie{{ID: 5, Title: "C"}}
	if err := s.SaveMovies(second); err != nil {
		t.Fatalf("Failed to save movies: %v", err)
	}

	got, err := s.LoadMovies()
	if err != nil {
		t.Fatalf("Failed to load movies: %v", err)
	}
	if len(got) != 1 || got[0].ID != 5 {
		t.Errorf("Expected only the replacement set, got %+v", got)
	}
}

// TestWithMariaDB runs the same flow against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}

	ctx := context.Background()

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mariadb:11",
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "reeldb_test",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, nat.Port("3306/tcp"))
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		StoreType:         "mariadb",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "reeldb_test",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// The log line fires before the server is fully ready
	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	s := store.NewDatabase(db)
	catalog := services.NewCatalog(s)

	movie, err := catalog.CreateMovie(&models.CreateMovieRequest{
		Title:     "Container Feature",
		Year:      2023,
		Genre:     []string{"Thriller"},
		Rating:    6.8,
		Director:  "Test Director",
		Runtime:   99,
		Synopsis:  "Stored in a throwaway MariaDB.",
		Cast:      []string{"Solo"},
		PosterURL: "https://example.com/container.jpg",
	})
	if err != nil {
		t.Fatalf("Failed to create movie: %v", err)
	}

	_, err = catalog.CreateReview(&models.CreateReviewRequest{
		MovieID:    types.FlexInt(movie.ID),
		UserName:   "containeruser",
		Rating:     4,
		ReviewText: "Works against the real thing.",
	})
	if err != nil {
		t.Fatalf("Failed to create review: %v", err)
	}

	got, err := catalog.GetMovie(movie.ID)
	if err != nil {
		t.Fatalf("Failed to get movie: %v", err)
	}
	if got.ReviewCount != 1 || got.AverageReviewRating != 4 {
		t.Errorf("Expected aggregated stats, got count=%d avg=%v",
			got.ReviewCount, got.AverageReviewRating)
	}
}
