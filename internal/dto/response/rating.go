package response

import (
	"time"

	"rating-catalog/internal/data/entity"
	"rating-catalog/internal/derive"
)

type RatingResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	EnglishTitle *string   `json:"english_title,omitempty"`
	Type         string    `json:"type"`
	Creator      *string   `json:"creator,omitempty"`
	Genre        *string   `json:"genre,omitempty"`
	Poster       *string   `json:"poster,omitempty"`
	Year         *int      `json:"year,omitempty"`
	Score        *float64  `json:"score,omitempty"`
	ScoreDisplay string    `json:"score_display"`
	StarPercent  float64   `json:"star_percent"`
	Review       *string   `json:"review,omitempty"`
	SeriesID     *string   `json:"series_id,omitempty"`
	SeriesTitle  *string   `json:"series_title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RatingDetailResponse struct {
	RatingResponse
	DetailReview *string    `json:"detail_review,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// RatingToResponse converts an entity plus its resolved series title
// (nil when the rating belongs to no series).
func RatingToResponse(rating *entity.Rating, seriesTitle *string) RatingResponse {
	resp := RatingResponse{
		ID:           rating.ID.String(),
		Title:        rating.Title,
		EnglishTitle: rating.EnglishTitle,
		Type:         string(rating.Type),
		Creator:      rating.Creator,
		Genre:        rating.Genre,
		Poster:       rating.Poster,
		Year:         rating.Year,
		Score:        rating.Score,
		ScoreDisplay: derive.ScoreLabel(rating.Score),
		StarPercent:  derive.StarPercent(rating.Score),
		Review:       rating.Review,
		SeriesTitle:  seriesTitle,
		CreatedAt:    rating.CreatedAt,
	}

	if rating.SeriesID != nil {
		id := rating.SeriesID.String()
		resp.SeriesID = &id
	}

	return resp
}

func RatingToDetailResponse(rating *entity.Rating, seriesTitle *string) RatingDetailResponse {
	return RatingDetailResponse{
		RatingResponse: RatingToResponse(rating, seriesTitle),
		DetailReview:   rating.DetailReview,
		UpdatedAt:      &rating.UpdatedAt,
	}
}
