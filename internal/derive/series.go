package derive

import (
	"rating-catalog/internal/data/entity"
)

// Summary holds the aggregate stats for one series. AverageScore is
// nil when no member has a positive score (rendered as "-").
type Summary struct {
	Title        string
	ItemCount    int
	AverageScore *float64
}

// Summarize counts the series' members and averages their positive
// scores. Membership is computed by scanning the snapshot; the series
// stores no back-collection.
func Summarize(series *entity.Series, items []*entity.Rating) Summary {
	sum := Summary{Title: series.Title}

	var total float64
	var scored int
	for _, item := range items {
		if item == nil || item.SeriesID == nil || *item.SeriesID != series.ID {
			continue
		}
		sum.ItemCount++
		if v := scoreValue(item); v > 0 {
			total += v
			scored++
		}
	}

	if scored > 0 {
		avg := RoundScore(total / float64(scored))
		sum.AverageScore = &avg
	}
	return sum
}
