package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reelkeep/reeldb/internal/models"
)

const (
	moviesFile  = "movies.json"
	reviewsFile = "reviews.json"
)

// JSONFileStore persists each collection as a pretty-printed JSON array in
// its own file under a data directory. A missing file reads as an empty
// collection; writes go to a temp file first and are renamed into place so a
// crash never leaves a truncated collection behind.
type JSONFileStore struct {
	dir string
}

// NewJSONFile creates the data directory if needed and returns a store over it.
func NewJSONFile(dir string) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &JSONFileStore{dir: dir}, nil
}

// Seed writes the given raw collections, but only for files that do not
// exist yet. Used to initialize a fresh data directory from embedded data.
func (s *JSONFileStore) Seed(movies, reviews []byte) error {
	for _, f := range []struct {
		name string
		data []byte
	}{
		{moviesFile, movies},
		{reviewsFile, reviews},
	} {
		path := filepath.Join(s.dir, f.name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return err
		}
		if err := s.writeFile(f.name, f.data); err != nil {
			return err
		}
	}
	return nil
}

func (s *JSONFileStore) LoadMovies() ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.readFile(moviesFile, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *JSONFileStore) SaveMovies(movies []models.Movie) error {
	return s.marshalFile(moviesFile, movies)
}

func (s *JSONFileStore) LoadReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.readFile(reviewsFile, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *JSONFileStore) SaveReviews(reviews []models.Review) error {
	return s.marshalFile(reviewsFile, reviews)
}

// Ping verifies the data directory is still present and accessible.
func (s *JSONFileStore) Ping() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

func (s *JSONFileStore) Close() error {
	return nil
}

func (s *JSONFileStore) readFile(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (s *JSONFileStore) marshalFile(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return s.writeFile(name, data)
}

// writeFile writes atomically: temp file in the same directory, then rename.
func (s *JSONFileStore) writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
