package models

// Review represents a user submission of a 1-5 rating and text tied to one
// movie. Reviews are never updated or deleted individually; they are only
// cascade-deleted with their parent movie. CreatedAt is an ISO-8601 string
// set by the server at creation time.
type Review struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	MovieID    int    `json:"movieId" gorm:"not null;index"`
	UserName   string `json:"userName" gorm:"size:255;not null"`
	Rating     int    `json:"rating" gorm:"not null"`
	ReviewText string `json:"reviewText" gorm:"type:text;not null"`
	CreatedAt  string `json:"createdAt" gorm:"size:64"`
}

// TableName overrides the table name for Review
func (Review) TableName() string {
	return "reviews"
}
