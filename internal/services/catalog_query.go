package services

import (
	"sort"
	"strings"

	"github.com/reelkeep/reeldb/internal/models"
)

// SortKey selects the movie field a catalog query sorts on.
type SortKey string

const (
	SortByTitle       SortKey = "title"
	SortByYear        SortKey = "year"
	SortByRating      SortKey = "rating"
	SortByReviewCount SortKey = "reviewCount"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// QueryParams describes one catalog query: optional filters plus a sort
// selection. The same params drive the paginated listing and the CSV export.
type QueryParams struct {
	Genre   string // exact, case-sensitive; "" or "all" disables the filter
	YearMin *int   // inclusive lower bound
	YearMax *int   // inclusive upper bound
	Search  string // case-insensitive substring over title, director, synopsis
	SortBy  SortKey
	Order   SortOrder
}

// ValidSortKey reports whether k is an accepted sortBy value.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortByTitle, SortByYear, SortByRating, SortByReviewCount:
		return true
	}
	return false
}

// ValidSortOrder reports whether o is an accepted order value.
func ValidSortOrder(o SortOrder) bool {
	return o == OrderAsc || o == OrderDesc
}

// Query applies the filter pipeline and sorts the result. The returned slice
// is the full matched set, pre-pagination; its length is the query total.
func Query(movies []models.Movie, p QueryParams) []models.Movie {
	matched := filterMovies(movies, p)
	sortMovies(matched, p.SortBy, p.Order)
	return matched
}

// Paginate returns the window of the matched set for a 1-based page. Pages
// past the end yield an empty slice, never an error.
func Paginate(movies []models.Movie, page, limit int) []models.Movie {
	start := (page - 1) * limit
	if start >= len(movies) {
		return []models.Movie{}
	}
	end := start + limit
	if end > len(movies) {
		end = len(movies)
	}
	return movies[start:end]
}

// TotalPages computes ceil(total/limit).
func TotalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

// filterMovies AND-combines the active filters, each optional:
// genre membership, inclusive year bounds, then text search.
func filterMovies(movies []models.Movie, p QueryParams) []models.Movie {
	matched := make([]models.Movie, 0, len(movies))

	search := strings.ToLower(strings.TrimSpace(p.Search))
	genreActive := p.Genre != "" && p.Genre != "all"

	for _, m := range movies {
		if genreActive && !containsGenre(m.Genre, p.Genre) {
			continue
		}
		if p.YearMin != nil && m.Year < *p.YearMin {
			continue
		}
		if p.YearMax != nil && m.Year > *p.YearMax {
			continue
		}
		if search != "" && !matchesSearch(m, search) {
			continue
		}
		matched = append(matched, m)
	}

	return matched
}

func containsGenre(genres []string, genre string) bool {
	for _, g := range genres {
		if g == genre {
			return true
		}
	}
	return false
}

// matchesSearch expects the needle already lowercased and trimmed.
func matchesSearch(m models.Movie, search string) bool {
	return strings.Contains(strings.ToLower(m.Title), search) ||
		strings.Contains(strings.ToLower(m.Director), search) ||
		strings.Contains(strings.ToLower(m.Synopsis), search)
}

// sortMovies sorts in place with a stable sort so ties keep their original
// relative order in both directions.
func sortMovies(movies []models.Movie, key SortKey, order SortOrder) {
	var less func(a, b models.Movie) bool

	switch key {
	case SortByYear:
		less = func(a, b models.Movie) bool { return a.Year < b.Year }
	case SortByRating:
		less = func(a, b models.Movie) bool { return a.Rating < b.Rating }
	case SortByReviewCount:
		less = func(a, b models.Movie) bool { return a.ReviewCount < b.ReviewCount }
	default: // SortByTitle
		less = func(a, b models.Movie) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	}

	sort.SliceStable(movies, func(i, j int) bool {
		if order == OrderDesc {
			return less(movies[j], movies[i])
		}
		return less(movies[i], movies[j])
	})
}
