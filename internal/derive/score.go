package derive

import (
	"math"
	"strconv"
)

// RoundScore rounds to one decimal place, the precision scores are
// stored and displayed at.
func RoundScore(v float64) float64 {
	return math.Round(v*10) / 10
}

// ScoreLabel formats a score for display, "-" when absent.
func ScoreLabel(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(RoundScore(*score), 'f', 1, 64)
}

// StarPercent maps a 0-10 score onto a 0-100 star-fill percentage,
// clamped. Missing or non-positive scores render an empty bar.
func StarPercent(score *float64) float64 {
	if score == nil || *score <= 0 {
		return 0
	}
	pct := *score / 10 * 100
	return math.Max(0, math.Min(100, pct))
}
