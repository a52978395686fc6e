package response

import (
	"time"

	"rating-catalog/internal/data/entity"
	"rating-catalog/internal/derive"
)

type SeriesResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type SeriesSummaryResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	ItemCount      int      `json:"item_count"`
	AverageScore   *float64 `json:"average_score,omitempty"`
	AverageDisplay string   `json:"average_display"`
}

func SeriesToResponse(series *entity.Series) SeriesResponse {
	return SeriesResponse{
		ID:        series.ID.String(),
		Title:     series.Title,
		Type:      string(series.Type),
		CreatedAt: series.CreatedAt,
	}
}

func SummaryToResponse(series *entity.Series, summary derive.Summary) SeriesSummaryResponse {
	return SeriesSummaryResponse{
		ID:             series.ID.String(),
		Title:          summary.Title,
		ItemCount:      summary.ItemCount,
		AverageScore:   summary.AverageScore,
		AverageDisplay: derive.ScoreLabel(summary.AverageScore),
	}
}
