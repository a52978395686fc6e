package entity

import (
	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeShow  MediaType = "show"
	MediaTypeBook  MediaType = "book"
)

type Rating struct {
	Base
	Title        string     `db:"title"`
	EnglishTitle *string    `db:"english_title"`
	Type         MediaType  `db:"type"`
	Creator      *string    `db:"creator"`
	Genre        *string    `db:"genre"` // comma-separated tags
	Poster       *string    `db:"poster"`
	Year         *int       `db:"year"`
	Score        *float64   `db:"score"` // rounded to 1 decimal, 0-10
	Review       *string    `db:"review"`
	DetailReview *string    `db:"detail_review"`
	SeriesID     *uuid.UUID `db:"series_id"`
}
