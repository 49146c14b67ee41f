package data

import (
	_ "embed"
)

// Seed collections used to initialize an empty data directory on first run.

//go:embed seed/movies.json
var SeedMovies []byte

//go:embed seed/reviews.json
var SeedReviews []byte
