package derive

import (
	"testing"
)

func TestRoundScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.36, 7.4},
		{7.34, 7.3},
		{7.35, 7.4},
		{0, 0},
		{10, 10},
		{9.99, 10},
	}

	for _, tt := range tests {
		if got := RoundScore(tt.in); got != tt.want {
			t.Errorf("RoundScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	if got := ScoreLabel(nil); got != "-" {
		t.Errorf("missing score should display %q, got %q", "-", got)
	}
	if got := ScoreLabel(scorePtr(7.36)); got != "7.4" {
		t.Errorf("expected %q, got %q", "7.4", got)
	}
	if got := ScoreLabel(scorePtr(8)); got != "8.0" {
		t.Errorf("expected %q, got %q", "8.0", got)
	}
}

func TestStarPercent(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  float64
	}{
		{"missing", nil, 0},
		{"zero", scorePtr(0), 0},
		{"negative", scorePtr(-1), 0},
		{"half", scorePtr(5), 50},
		{"full", scorePtr(10), 100},
		{"over", scorePtr(12), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StarPercent(tt.score); got != tt.want {
				t.Errorf("StarPercent = %v, want %v", got, tt.want)
			}
		})
	}
}
