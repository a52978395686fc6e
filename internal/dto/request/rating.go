package request

type RatingRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	EnglishTitle *string  `json:"english_title,omitempty" validate:"omitempty,max=200"`
	Type         string   `json:"type" validate:"required,oneof=movie show book"`
	Creator      *string  `json:"creator,omitempty" validate:"omitempty,max=200"`
	Genre        *string  `json:"genre,omitempty" validate:"omitempty,max=500"`
	Poster       *string  `json:"poster,omitempty" validate:"omitempty,max=200"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1000,max=9999"`
	Score        *float64 `json:"score,omitempty" validate:"omitempty,min=0,max=10"`
	Review       *string  `json:"review,omitempty"`
	DetailReview *string  `json:"detail_review,omitempty"`
	SeriesID     *string  `json:"series_id,omitempty" validate:"omitempty,uuid4"`
	// SeriesName creates a new series first and links the rating to it,
	// taking precedence over SeriesID.
	SeriesName *string `json:"series_name,omitempty" validate:"omitempty,min=1,max=200"`
}

type RatingUpdateRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	EnglishTitle *string  `json:"english_title,omitempty" validate:"omitempty,max=200"`
	Type         *string  `json:"type,omitempty" validate:"omitempty,oneof=movie show book"`
	Creator      *string  `json:"creator,omitempty" validate:"omitempty,max=200"`
	Genre        *string  `json:"genre,omitempty" validate:"omitempty,max=500"`
	Poster       *string  `json:"poster,omitempty" validate:"omitempty,max=200"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1000,max=9999"`
	Score        *float64 `json:"score,omitempty" validate:"omitempty,min=0,max=10"`
	Review       *string  `json:"review,omitempty"`
	DetailReview *string  `json:"detail_review,omitempty"`
	SeriesID     *string  `json:"series_id,omitempty" validate:"omitempty,uuid4"`
	SeriesName   *string  `json:"series_name,omitempty" validate:"omitempty,min=1,max=200"`
}
