package services

import (
	"log"
	"sync"

	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/store"
	"github.com/reelkeep/reeldb/internal/types"
)

// Catalog owns the movie and review collections. All operations re-read the
// full collection from the store; mutations hold the collection mutex for
// the whole read-modify-write cycle so concurrent writes cannot lose
// updates. Lock order is always moviesMu before reviewsMu.
type Catalog struct {
	store store.Store

	moviesMu  sync.Mutex
	reviewsMu sync.Mutex
}

func NewCatalog(s store.Store) *Catalog {
	return &Catalog{store: s}
}

// ListMovies runs the query pipeline and paginates the result.
func (c *Catalog) ListMovies(p QueryParams, page, limit int) (*models.MoviesResponse, error) {
	matched, err := c.queryMovies(p)
	if err != nil {
		return nil, err
	}

	total := len(matched)
	return &models.MoviesResponse{
		Movies:     Paginate(matched, page, limit),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}, nil
}

// ExportMovies runs the same query pipeline without pagination; the CSV
// export renders the full matched set.
func (c *Catalog) ExportMovies(p QueryParams) ([]models.Movie, error) {
	return c.queryMovies(p)
}

func (c *Catalog) queryMovies(p QueryParams) ([]models.Movie, error) {
	movies, err := c.store.LoadMovies()
	if err != nil {
		log.Printf("Failed to load movies: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.movies")
	}
	return Query(movies, p), nil
}

// GetMovie returns the movie with the given id.
func (c *Catalog) GetMovie(id int) (*models.Movie, error) {
	movies, err := c.store.LoadMovies()
	if err != nil {
		log.Printf("Failed to load movies: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.movies")
	}

	for i := range movies {
		if movies[i].ID == id {
			return &movies[i], nil
		}
	}
	return nil, types.NewNotFoundError("Movie not found", "catalog.notfound.movie")
}

// CreateMovie appends a new movie with the next free id (max existing + 1,
// or 1 for an empty catalog).
func (c *Catalog) CreateMovie(req *models.CreateMovieRequest) (*models.Movie, error) {
	c.moviesMu.Lock()
	defer c.moviesMu.Unlock()

	movies, err := c.store.LoadMovies()
	if err != nil {
		log.Printf("Failed to load movies: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.movies")
	}

	movie := req.Movie()
	movie.ID = nextID(movieIDs(movies))
	movies = append(movies, movie)

	if err := c.store.SaveMovies(movies); err != nil {
		log.Printf("Failed to save movies: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.movies")
	}

	return &movie, nil
}

// UpdateMovie overwrites the fields present in the request. The derived
// review stats are not reachable through the request type.
func (c *Catalog) UpdateMovie(id int, req *models.UpdateMovieRequest) (*models.Movie, error) {
	c.moviesMu.Lock()
	defer c.moviesMu.Unlock()

	movies, err := c.store.LoadMovies()
	if err != nil {
		log.Printf("Failed to load movies: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.movies")
	}

	idx := -1
	for i := range movies {
		if movies[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, types.NewNotFoundError("Movie not found", "catalog.notfound.movie")
	}

	req.Apply(&movies[idx])

	if err := c.store.SaveMovies(movies); err != nil {
		log.Printf("Failed to save movies: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.movies")
	}

	return &movies[idx], nil
}

// DeleteMovie removes the movie and cascade-deletes every review that
// references it.
func (c *Catalog) DeleteMovie(id int) error {
	c.moviesMu.Lock()
	defer c.moviesMu.Unlock()
	c.reviewsMu.Lock()
	defer c.reviewsMu.Unlock()

	movies, err := c.store.LoadMovies()
	if err != nil {
		log.Printf("Failed to load movies: %v", err)
		return types.NewPersistenceError("catalog.persistence.movies")
	}

	kept := movies[:0:0]
	for _, m := range movies {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(movies) {
		return types.NewNotFoundError("Movie not found", "catalog.notfound.movie")
	}

	if err := c.store.SaveMovies(kept); err != nil {
		log.Printf("Failed to save movies: %v", err)
		return types.NewPersistenceError("catalog.persistence.movies")
	}

	reviews, err := c.store.LoadReviews()
	if err != nil {
		log.Printf("Failed to load reviews: %v", err)
		return types.NewPersistenceError("catalog.persistence.reviews")
	}

	keptReviews := reviews[:0:0]
	for _, r := range reviews {
		if r.MovieID != id {
			keptReviews = append(keptReviews, r)
		}
	}
	if len(keptReviews) != len(reviews) {
		if err := c.store.SaveReviews(keptReviews); err != nil {
			log.Printf("Failed to save reviews: %v", err)
			return types.NewPersistenceError("catalog.persistence.reviews")
		}
	}

	return nil
}

// nextID implements the max-existing+1 assignment rule, starting at 1.
func nextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

func movieIDs(movies []models.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func reviewIDs(reviews []models.Review) []int {
	ids := make([]int, len(reviews))
	for i, r := range reviews {
		ids[i] = r.ID
	}
	return ids
}
