package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewUpdatesMovieStats(t *testing.T) {
	catalog, s := newTestCatalog(t, []models.Movie{{ID: 1, Title: "Solo"}}, nil)

	first, err := catalog.CreateReview(&models.CreateReviewRequest{
		MovieID:    1,
		UserName:   "alice",
		Rating:     5,
		ReviewText: "Loved it.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	require.NotEmpty(t, first.CreatedAt)
	_, err = time.Parse(time.RFC3339, first.CreatedAt)
	require.NoError(t, err)

	_, err = catalog.CreateReview(&models.CreateReviewRequest{
		MovieID:    1,
		UserName:   "bob",
		Rating:     4,
		ReviewText: "Pretty good.",
	})
	require.NoError(t, err)

	movies, err := s.LoadMovies()
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, 2, movies[0].ReviewCount)
	assert.Equal(t, 4.5, movies[0].AverageReviewRating)
}

func TestCreateReviewUnknownMovieSkipsAggregation(t *testing.T) {
	// The review persists even when no movie carries its id; only the
	// aggregation is skipped.
	catalog, s := newTestCatalog(t, []models.Movie{{ID: 1, Title: "Solo"}}, nil)

	review, err := catalog.CreateReview(&models.CreateReviewRequest{
		MovieID:    42,
		UserName:   "carol",
		Rating:     3,
		ReviewText: "Orphaned.",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, review.MovieID)

	reviews, err := s.LoadReviews()
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	movies, err := s.LoadMovies()
	require.NoError(t, err)
	assert.Zero(t, movies[0].ReviewCount)
}

func TestCreateReviewRejectsBlankFields(t *testing.T) {
	catalog, _ := newTestCatalog(t, []models.Movie{{ID: 1}}, nil)

	_, err := catalog.CreateReview(&models.CreateReviewRequest{
		MovieID:    1,
		UserName:   "   ",
		Rating:     4,
		ReviewText: "Fine.",
	})
	var custom *types.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "Invalid userName", custom.Message)

	_, err = catalog.CreateReview(&models.CreateReviewRequest{
		MovieID:    1,
		UserName:   "dave",
		Rating:     4,
		ReviewText: "\n\t ",
	})
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "Invalid reviewText", custom.Message)
}

func TestCreateReviewTrimsText(t *testing.T) {
	catalog, _ := newTestCatalog(t, []models.Movie{{ID: 1}}, nil)

	review, err := catalog.CreateReview(&models.CreateReviewRequest{
		MovieID:    1,
		UserName:   "  erin  ",
		Rating:     5,
		ReviewText: "  Great watch.  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "erin", review.UserName)
	assert.Equal(t, "Great watch.", review.ReviewText)
}

func TestReviewsForMovieNewestFirst(t *testing.T) {
	catalog, _ := newTestCatalog(t, []models.Movie{{ID: 1}}, []models.Review{
		{ID: 1, MovieID: 1, UserName: "a", Rating: 4, ReviewText: "x", CreatedAt: "2024-01-01T10:00:00Z"},
		{ID: 2, MovieID: 2, UserName: "b", Rating: 2, ReviewText: "y", CreatedAt: "2024-02-01T10:00:00Z"},
		{ID: 3, MovieID: 1, UserName: "c", Rating: 5, ReviewText: "z", CreatedAt: "2024-03-01T10:00:00Z"},
	})

	reviews, err := catalog.ReviewsForMovie(1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 3, reviews[0].ID)
	assert.Equal(t, 1, reviews[1].ID)
}

func TestReviewsForMovieEmpty(t *testing.T) {
	catalog, _ := newTestCatalog(t, []models.Movie{{ID: 1}}, nil)

	reviews, err := catalog.ReviewsForMovie(1)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestGetReviewNotFound(t *testing.T) {
	catalog, _ := newTestCatalog(t, nil, nil)

	_, err := catalog.GetReview(9)
	var custom *types.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, 404, custom.Code)
	assert.Equal(t, "Review not found", custom.Message)
}

func TestRecomputeMovieStatsAfterManualEdit(t *testing.T) {
	catalog, s := newTestCatalog(t,
		[]models.Movie{{ID: 1, ReviewCount: 99, AverageReviewRating: 9.9}},
		[]models.Review{
			{ID: 1, MovieID: 1, Rating: 2, UserName: "a", ReviewText: "x", CreatedAt: "2024-01-01T00:00:00Z"},
			{ID: 2, MovieID: 1, Rating: 3, UserName: "b", ReviewText: "y", CreatedAt: "2024-01-02T00:00:00Z"},
		})

	require.NoError(t, catalog.RecomputeMovieStats(1))

	movies, err := s.LoadMovies()
	require.NoError(t, err)
	assert.Equal(t, 2, movies[0].ReviewCount)
	assert.Equal(t, 2.5, movies[0].AverageReviewRating)
}
