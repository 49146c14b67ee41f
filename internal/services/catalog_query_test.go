package services_test

import (
	"testing"

	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleCatalog() []models.Movie {
	return []models.Movie{
		{ID: 1, Title: "Delta Dawn", Year: 2010, Genre: models.StringList{"Drama"}, Rating: 7.0, Director: "Ray Quist", Synopsis: "A farmhand inherits a debt.", ReviewCount: 3},
		{ID: 2, Title: "alpha Strike", Year: 2018, Genre: models.StringList{"Action", "Thriller"}, Rating: 6.5, Director: "Nina Ortiz", Synopsis: "A heist goes sideways.", ReviewCount: 1},
		{ID: 3, Title: "Beta Blues", Year: 2018, Genre: models.StringList{"Drama"}, Rating: 8.1, Director: "Ray Quist", Synopsis: "A jazz club on its last night.", ReviewCount: 5},
		{ID: 4, Title: "Charlie's Orbit", Year: 2021, Genre: models.StringList{"Sci-Fi"}, Rating: 7.0, Director: "Mina Park", Synopsis: "A satellite repairman stranded in orbit.", ReviewCount: 0},
	}
}

func TestQueryGenreFilter(t *testing.T) {
	got := services.Query(sampleCatalog(), services.QueryParams{Genre: "Drama"})
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID) // Beta Blues sorts before Delta Dawn by title
	assert.Equal(t, 1, got[1].ID)
}

func TestQueryGenreAllDisablesFilter(t *testing.T) {
	got := services.Query(sampleCatalog(), services.QueryParams{Genre: "all"})
	assert.Len(t, got, 4)
}

func TestQueryYearBoundsInclusive(t *testing.T) {
	got := services.Query(sampleCatalog(), services.QueryParams{
		YearMin: intPtr(2018),
		YearMax: intPtr(2018),
	})
	require.Len(t, got, 2)
	for _, m := range got {
		assert.Equal(t, 2018, m.Year)
	}
}

func TestQuerySearchCaseInsensitive(t *testing.T) {
	// Matches across title, director and synopsis.
	cases := map[string]int{
		"DELTA":     1, // title
		"ortiz":     2, // director
		"SATELLITE": 4, // synopsis
	}
	for needle, wantID := range cases {
		got := services.Query(sampleCatalog(), services.QueryParams{Search: needle})
		require.Len(t, got, 1, "search %q", needle)
		assert.Equal(t, wantID, got[0].ID, "search %q", needle)
	}
}

func TestQueryFiltersCombine(t *testing.T) {
	got := services.Query(sampleCatalog(), services.QueryParams{
		Genre:   "Drama",
		YearMin: intPtr(2015),
		Search:  "jazz",
	})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestSortTitleIgnoresCase(t *testing.T) {
	got := services.Query(sampleCatalog(), services.QueryParams{SortBy: services.SortByTitle})
	ids := movieIDs(got)
	// "alpha Strike" sorts first despite the lowercase a.
	assert.Equal(t, []int{2, 3, 4, 1}, ids)
}

func TestSortYearDesc(t *testing.T) {
	got := services.Query(sampleCatalog(), services.QueryParams{
		SortBy: services.SortByYear,
		Order:  services.OrderDesc,
	})
	years := make([]int, len(got))
	for i, m := range got {
		years[i] = m.Year
	}
	assert.Equal(t, []int{2021, 2018, 2018, 2010}, years)
}

func TestSortStableOnTies(t *testing.T) {
	// Movies 1 and 4 share rating 7.0; their input order must survive the
	// sort in both directions.
	asc := services.Query(sampleCatalog(), services.QueryParams{SortBy: services.SortByRating})
	require.Equal(t, []int{2, 1, 4, 3}, movieIDs(asc))

	desc := services.Query(sampleCatalog(), services.QueryParams{
		SortBy: services.SortByRating,
		Order:  services.OrderDesc,
	})
	require.Equal(t, []int{3, 1, 4, 2}, movieIDs(desc))
}

func TestSortReviewCount(t *testing.T) {
	got := services.Query(sampleCatalog(), services.QueryParams{
		SortBy: services.SortByReviewCount,
		Order:  services.OrderDesc,
	})
	assert.Equal(t, []int{3, 1, 2, 4}, movieIDs(got))
}

func TestPaginateWindows(t *testing.T) {
	movies := sampleCatalog()

	page1 := services.Paginate(movies, 1, 3)
	require.Len(t, page1, 3)

	page2 := services.Paginate(movies, 2, 3)
	require.Len(t, page2, 1)
	assert.Equal(t, movies[3].ID, page2[0].ID)

	// Past the end yields an empty slice, never an error.
	page3 := services.Paginate(movies, 3, 3)
	assert.NotNil(t, page3)
	assert.Empty(t, page3)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, services.TotalPages(0, 10))
	assert.Equal(t, 1, services.TotalPages(10, 10))
	assert.Equal(t, 2, services.TotalPages(11, 10))
	assert.Equal(t, 4, services.TotalPages(4, 1))
}

func TestValidSortParams(t *testing.T) {
	assert.True(t, services.ValidSortKey(services.SortByTitle))
	assert.True(t, services.ValidSortKey(services.SortByReviewCount))
	assert.False(t, services.ValidSortKey("director"))

	assert.True(t, services.ValidSortOrder(services.OrderDesc))
	assert.False(t, services.ValidSortOrder("descending"))
}

func movieIDs(movies []models.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}
