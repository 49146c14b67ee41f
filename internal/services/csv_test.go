package services_test

import (
	"strings"
	"testing"

	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeaderRow = "ID,Title,Year,Genre,Rating,Director,Runtime (minutes),Synopsis,Cast,Poster URL,Review Count,Average Review Rating"

func TestRenderCSVHeaderOnly(t *testing.T) {
	assert.Equal(t, csvHeaderRow, services.RenderCSV(nil))
}

func TestRenderCSVPlainRow(t *testing.T) {
	out := services.RenderCSV([]models.Movie{{
		ID:                  1,
		Title:               "Plain Title",
		Year:                2020,
		Genre:               models.StringList{"Drama", "Crime"},
		Rating:              7.5,
		Director:            "Jane Doe",
		Runtime:             120,
		Synopsis:            "Nothing to escape here.",
		Cast:                models.StringList{"A. Actor", "B. Actor"},
		PosterURL:           "https://example.com/p.jpg",
		ReviewCount:         3,
		AverageReviewRating: 4,
	}})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, csvHeaderRow, lines[0])
	assert.Equal(t,
		"1,Plain Title,2020,Drama; Crime,7.5,Jane Doe,120,Nothing to escape here.,A. Actor; B. Actor,https://example.com/p.jpg,3,4.00",
		lines[1])
}

func TestRenderCSVQuotesCommas(t *testing.T) {
	out := services.RenderCSV([]models.Movie{{
		ID:    2,
		Title: "Title, Part 2",
	}})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"Title, Part 2"`)
}

func TestRenderCSVDoublesQuotes(t *testing.T) {
	out := services.RenderCSV([]models.Movie{{
		ID:   3,
		Cast: models.StringList{`Bob "The Kid" Smith`},
	}})

	assert.Contains(t, out, `"Bob ""The Kid"" Smith"`)
}

func TestRenderCSVQuotesNewlines(t *testing.T) {
	out := services.RenderCSV([]models.Movie{{
		ID:       4,
		Synopsis: "Line one.\nLine two.",
	}})

	assert.Contains(t, out, "\"Line one.\nLine two.\"")
}

func TestRenderCSVAverageAlwaysTwoDecimals(t *testing.T) {
	out := services.RenderCSV([]models.Movie{
		{ID: 1, AverageReviewRating: 4.5},
		{ID: 2, AverageReviewRating: 0},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[1], ",4.50"))
	assert.True(t, strings.HasSuffix(lines[2], ",0.00"))
}
