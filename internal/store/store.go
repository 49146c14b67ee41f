// Package store provides the persistence backends for the two catalog
// collections. Every backend exposes the same whole-collection read and
// whole-collection replace contract; callers serialize their own
// read-modify-write cycles.
package store

import (
	"github.com/reelkeep/reeldb/internal/models"
)

// Store is the persistence collaborator. Movies and reviews are independent
// top-level collections; a save replaces the entire collection atomically
// with respect to later loads.
type Store interface {
	LoadMovies() ([]models.Movie, error)
	SaveMovies(movies []models.Movie) error
	LoadReviews() ([]models.Review, error)
	SaveReviews(reviews []models.Review) error

	// Ping reports whether the backing storage is reachable.
	Ping() error
	Close() error
}
