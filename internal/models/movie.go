package models

// Movie represents a catalog entry. JSON field names match the documents the
// service persists and serves; reviewCount and averageReviewRating are
// derived from the review collection and are never set by clients.
type Movie struct {
	ID                  int        `json:"id" gorm:"primaryKey"`
	Title               string     `json:"title" gorm:"size:255;not null"`
	Year                int        `json:"year" gorm:"not null"`
	Genre               StringList `json:"genre"`
	Rating              float64    `json:"rating"`
	Director            string     `json:"director" gorm:"size:255"`
	Runtime             int        `json:"runtime"`
	Synopsis            string     `json:"synopsis" gorm:"type:text"`
	Cast                StringList `json:"cast"`
	PosterURL           string     `json:"posterUrl" gorm:"size:1024"`
	ReviewCount         int        `json:"reviewCount"`
	AverageReviewRating float64    `json:"averageReviewRating"`
}

// TableName overrides the table name for Movie
func (Movie) TableName() string {
	return "movies"
}
