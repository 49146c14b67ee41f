package services

import (
	"log"
	"sort"
	"time"

	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/types"
)

// ReviewsForMovie returns the reviews referencing the movie, newest first.
// A movie with no reviews (or an unknown id) yields an empty slice.
func (c *Catalog) ReviewsForMovie(movieID int) ([]models.Review, error) {
	reviews, err := c.store.LoadReviews()
	if err != nil {
		log.Printf("Failed to load reviews: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.reviews")
	}

	matched := make([]models.Review, 0)
	for _, r := range reviews {
		if r.MovieID == movieID {
			matched = append(matched, r)
		}
	}

	// CreatedAt is RFC 3339 in UTC, so lexicographic order is chronological.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})

	return matched, nil
}

// GetReview returns the review with the given id.
func (c *Catalog) GetReview(id int) (*models.Review, error) {
	reviews, err := c.store.LoadReviews()
	if err != nil {
		log.Printf("Failed to load reviews: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.reviews")
	}

	for i := range reviews {
		if reviews[i].ID == id {
			return &reviews[i], nil
		}
	}
	return nil, types.NewNotFoundError("Review not found", "catalog.notfound.review")
}

// CreateReview persists a new review and synchronously restores the parent
// movie's derived stats before returning. The movieId is not required to
// reference an existing movie; aggregation is simply skipped when it does
// not. The create call never returns with a review persisted but the movie
// stats stale.
func (c *Catalog) CreateReview(req *models.CreateReviewRequest) (*models.Review, error) {
	review := req.Review()
	if review.UserName == "" {
		return nil, types.NewValidationError("Invalid userName", "catalog.validation.review")
	}
	if review.ReviewText == "" {
		return nil, types.NewValidationError("Invalid reviewText", "catalog.validation.review")
	}
	review.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	c.moviesMu.Lock()
	defer c.moviesMu.Unlock()
	c.reviewsMu.Lock()
	defer c.reviewsMu.Unlock()

	reviews, err := c.store.LoadReviews()
	if err != nil {
		log.Printf("Failed to load reviews: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.reviews")
	}

	review.ID = nextID(reviewIDs(reviews))
	reviews = append(reviews, review)

	if err := c.store.SaveReviews(reviews); err != nil {
		log.Printf("Failed to save reviews: %v", err)
		return nil, types.NewPersistenceError("catalog.persistence.reviews")
	}

	if err := c.recomputeMovieStats(review.MovieID, reviews); err != nil {
		return nil, err
	}

	return &review, nil
}

// RecomputeMovieStats re-derives reviewCount and averageReviewRating for one
// movie from the current review collection and persists the result.
func (c *Catalog) RecomputeMovieStats(movieID int) error {
	c.moviesMu.Lock()
	defer c.moviesMu.Unlock()
	c.reviewsMu.Lock()
	defer c.reviewsMu.Unlock()

	reviews, err := c.store.LoadReviews()
	if err != nil {
		log.Printf("Failed to load reviews: %v", err)
		return types.NewPersistenceError("catalog.persistence.reviews")
	}
	return c.recomputeMovieStats(movieID, reviews)
}

// recomputeMovieStats expects both collection mutexes held. A movieID with
// no matching movie is a no-op.
func (c *Catalog) recomputeMovieStats(movieID int, reviews []models.Review) error {
	movies, err := c.store.LoadMovies()
	if err != nil {
		log.Printf("Failed to load movies: %v", err)
		return types.NewPersistenceError("catalog.persistence.movies")
	}

	idx := -1
	for i := range movies {
		if movies[i].ID == movieID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	count := 0
	sum := 0
	for _, r := range reviews {
		if r.MovieID == movieID {
			count++
			sum += r.Rating
		}
	}

	movies[idx].ReviewCount = count
	if count > 0 {
		movies[idx].AverageReviewRating = float64(sum) / float64(count)
	} else {
		movies[idx].AverageReviewRating = 0
	}

	if err := c.store.SaveMovies(movies); err != nil {
		log.Printf("Failed to save movies: %v", err)
		return types.NewPersistenceError("catalog.persistence.movies")
	}
	return nil
}
