package services

import (
	"strconv"
	"strings"

	"github.com/reelkeep/reeldb/internal/models"
)

// csvHeaders is the fixed export column order.
var csvHeaders = []string{
	"ID",
	"Title",
	"Year",
	"Genre",
	"Rating",
	"Director",
	"Runtime (minutes)",
	"Synopsis",
	"Cast",
	"Poster URL",
	"Review Count",
	"Average Review Rating",
}

// RenderCSV renders the matched movie set as a CSV document, header row
// first, rows joined with "\n". List fields are joined with "; " before
// escaping; the average review rating always carries two decimals.
func RenderCSV(movies []models.Movie) string {
	var b strings.Builder

	writeCSVRow(&b, csvHeaders)
	for _, m := range movies {
		b.WriteByte('\n')
		writeCSVRow(&b, []string{
			strconv.Itoa(m.ID),
			m.Title,
			strconv.Itoa(m.Year),
			strings.Join(m.Genre, "; "),
			strconv.FormatFloat(m.Rating, 'f', -1, 64),
			m.Director,
			strconv.Itoa(m.Runtime),
			m.Synopsis,
			strings.Join(m.Cast, "; "),
			m.PosterURL,
			strconv.Itoa(m.ReviewCount),
			strconv.FormatFloat(m.AverageReviewRating, 'f', 2, 64),
		})
	}

	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSVField(f))
	}
}

// escapeCSVField quotes a field only when it contains a comma, a double
// quote, or a newline, doubling any internal quotes.
func escapeCSVField(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
