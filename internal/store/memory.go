package store

import (
	"sync"

	"github.com/reelkeep/reeldb/internal/models"
)

// MemoryStore keeps both collections in process memory. Used by tests and
// available as STORE_TYPE=memory for ephemeral deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	movies  []models.Movie
	reviews []models.Review
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadMovies() ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Movie, len(s.movies))
	copy(out, s.movies)
	return out, nil
}

func (s *MemoryStore) SaveMovies(movies []models.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = make([]models.Movie, len(movies))
	copy(s.movies, movies)
	return nil
}

func (s *MemoryStore) LoadReviews() ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

func (s *MemoryStore) SaveReviews(reviews []models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = make([]models.Review, len(reviews))
	copy(s.reviews, reviews)
	return nil
}

func (s *MemoryStore) Ping() error { return nil }

func (s *MemoryStore) Close() error { return nil }
