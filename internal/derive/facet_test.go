package derive

import (
	"reflect"
	"testing"

	"rating-catalog/internal/data/entity"
)

func TestGenres_DedupeAndSort(t *testing.T) {
	items := []*entity.Rating{
		testRating("a", func(r *entity.Rating) { r.Genre = strPtr("Drama, Action") }),
		testRating("b", func(r *entity.Rating) { r.Genre = strPtr("Action,Comedy") }),
		testRating("c", func(r *entity.Rating) { r.Genre = strPtr(" Drama ,, ") }),
		testRating("d", nil),
	}

	got := Genres(items)
	want := []string{"all", "Action", "Comedy", "Drama"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGenres_CaseSensitiveUniqueness(t *testing.T) {
	items := []*entity.Rating{
		testRating("a", func(r *entity.Rating) { r.Genre = strPtr("action,Action") }),
	}

	got := Genres(items)
	if len(got) != 3 {
		t.Fatalf("expected sentinel plus both casings, got %v", got)
	}
}

func TestGenres_EmptySnapshot(t *testing.T) {
	got := Genres(nil)
	if len(got) != 1 || got[0] != GenreAll {
		t.Errorf("empty snapshot should yield just the sentinel, got %v", got)
	}
}

func TestKeepSelection(t *testing.T) {
	options := []string{"all", "Action", "Drama"}

	tests := []struct {
		name    string
		current string
		want    string
	}{
		{"still present", "Drama", "Drama"},
		{"disappeared", "Comedy", "all"},
		{"sentinel", "all", "all"},
		{"empty", "", "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeepSelection(options, tt.current); got != tt.want {
				t.Errorf("KeepSelection(%q) = %q, want %q", tt.current, got, tt.want)
			}
		})
	}
}
