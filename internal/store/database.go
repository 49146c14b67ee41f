package store

import (
	"fmt"

	"github.com/reelkeep/reeldb/internal/models"
	"gorm.io/gorm"
)

// DatabaseStore implements the whole-collection contract on top of a GORM
// connection. A save replaces the full table inside one transaction, which
// keeps replace-all semantics identical to the file store.
type DatabaseStore struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) LoadMovies() ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.db.Order("id").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	return movies, nil
}

func (s *DatabaseStore) SaveMovies(movies []models.Movie) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Movie{}).Error; err != nil {
			return fmt.Errorf("failed to clear movies: %w", err)
		}
		if len(movies) == 0 {
			return nil
		}
		if err := tx.Create(&movies).Error; err != nil {
			return fmt.Errorf("failed to save movies: %w", err)
		}
		return nil
	})
}

func (s *DatabaseStore) LoadReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Order("id").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	return reviews, nil
}

func (s *DatabaseStore) SaveReviews(reviews []models.Review) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to clear reviews: %w", err)
		}
		if len(reviews) == 0 {
			return nil
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return fmt.Errorf("failed to save reviews: %w", err)
		}
		return nil
	})
}

func (s *DatabaseStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *DatabaseStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
