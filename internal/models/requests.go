package models

import (
	"strings"

	"github.com/reelkeep/reeldb/internal/types"
)

// CreateMovieRequest defines the body for POST /api/movies. Every field is
// required; presence is checked against the raw body before decoding so a
// missing field is reported by name.
type CreateMovieRequest struct {
	Title     string                 `json:"title" validate:"required"`
	Year      types.FlexInt          `json:"year" validate:"required"`
	Genre     types.FlexList[string] `json:"genre" validate:"min=1,dive,min=1"`
	Rating    float64                `json:"rating" validate:"gte=0,lte=10"`
	Director  string                 `json:"director" validate:"required"`
	Runtime   types.FlexInt          `json:"runtime" validate:"gte=0"`
	Synopsis  string                 `json:"synopsis" validate:"required"`
	Cast      types.FlexList[string] `json:"cast" validate:"min=1,dive,min=1"`
	PosterURL string                 `json:"posterUrl" validate:"required"`
}

// RequiredMovieFields lists the body keys that must be present on create.
var RequiredMovieFields = []string{
	"title", "year", "genre", "rating", "director",
	"runtime", "synopsis", "cast", "posterUrl",
}

// Movie builds a new Movie from the request. Review stats start at zero and
// stay derived from the review collection from then on.
func (r *CreateMovieRequest) Movie() Movie {
	return Movie{
		Title:     r.Title,
		Year:      r.Year.Int(),
		Genre:     StringList(r.Genre.Slice()),
		Rating:    r.Rating,
		Director:  r.Director,
		Runtime:   r.Runtime.Int(),
		Synopsis:  r.Synopsis,
		Cast:      StringList(r.Cast.Slice()),
		PosterURL: r.PosterURL,
	}
}

// UpdateMovieRequest defines the body for PUT /api/movies/:id. All fields are
// optional; the decoder rejects unrecognized keys, which also keeps the
// derived reviewCount / averageReviewRating fields read-only.
type UpdateMovieRequest struct {
	Title     *string                 `json:"title" validate:"omitempty,min=1"`
	Year      *types.FlexInt          `json:"year"`
	Genre     *types.FlexList[string] `json:"genre" validate:"omitempty,min=1,dive,min=1"`
	Rating    *float64                `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Director  *string                 `json:"director" validate:"omitempty,min=1"`
	Runtime   *types.FlexInt          `json:"runtime" validate:"omitempty,gte=0"`
	Synopsis  *string                 `json:"synopsis"`
	Cast      *types.FlexList[string] `json:"cast" validate:"omitempty,min=1,dive,min=1"`
	PosterURL *string                 `json:"posterUrl"`
}

// Apply overwrites the fields present in the request onto the movie.
func (r *UpdateMovieRequest) Apply(m *Movie) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Year != nil {
		m.Year = r.Year.Int()
	}
	if r.Genre != nil {
		m.Genre = StringList(r.Genre.Slice())
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	if r.Director != nil {
		m.Director = *r.Director
	}
	if r.Runtime != nil {
		m.Runtime = r.Runtime.Int()
	}
	if r.Synopsis != nil {
		m.Synopsis = *r.Synopsis
	}
	if r.Cast != nil {
		m.Cast = StringList(r.Cast.Slice())
	}
	if r.PosterURL != nil {
		m.PosterURL = *r.PosterURL
	}
}

// CreateReviewRequest defines the body for POST /api/reviews.
type CreateReviewRequest struct {
	MovieID    types.FlexInt `json:"movieId" validate:"required,gt=0"`
	UserName   string        `json:"userName" validate:"required"`
	Rating     types.FlexInt `json:"rating" validate:"gte=1,lte=5"`
	ReviewText string        `json:"reviewText" validate:"required"`
}

// RequiredReviewFields lists the body keys that must be present on create.
var RequiredReviewFields = []string{"movieId", "userName", "rating", "reviewText"}

// Review builds a new Review from the request. UserName and ReviewText are
// stored trimmed; CreatedAt is filled in by the service.
func (r *CreateReviewRequest) Review() Review {
	return Review{
		MovieID:    r.MovieID.Int(),
		UserName:   strings.TrimSpace(r.UserName),
		Rating:     r.Rating.Int(),
		ReviewText: strings.TrimSpace(r.ReviewText),
	}
}

// LoginRequest defines the body for POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// MoviesResponse is the paginated listing response shape.
type MoviesResponse struct {
	Movies     []Movie `json:"movies"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}
