package derive

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"rating-catalog/internal/data/entity"
)

type SortMode string

const (
	SortCreatedDesc SortMode = "created-desc"
	SortScoreDesc   SortMode = "score-desc"
	SortScoreAsc    SortMode = "score-asc"
	SortTitleAsc    SortMode = "title-asc"
)

// ListState is the full filter/sort state driving a list derivation.
// Zero values mean "no filter" ("all" is accepted as an alias).
type ListState struct {
	Type     string
	Genre    string
	SeriesID string
	Search   string
	Sort     SortMode
}

// List derives the ordered display list from the full ratings snapshot.
// Pure function: same snapshot and state always yield the same order.
func List(items []*entity.Rating, state ListState) []*entity.Rating {
	out := make([]*entity.Rating, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if matches(item, state) {
			out = append(out, item)
		}
	}
	sortItems(out, state.Sort)
	return out
}

// matches applies the filters as a conjunction. When a search term is
// active the type/genre/series filters still gate first, but the final
// decision is the search predicate alone (observed behavior, kept as is).
func matches(item *entity.Rating, state ListState) bool {
	if state.Type != "" && state.Type != "all" && string(item.Type) != state.Type {
		return false
	}

	if state.Genre != "" && state.Genre != "all" {
		want := strings.ToLower(state.Genre)
		found := false
		for _, tag := range splitTags(strings.ToLower(strVal(item.Genre))) {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if state.SeriesID != "" {
		if item.SeriesID == nil || item.SeriesID.String() != state.SeriesID {
			return false
		}
	}

	if state.Search != "" {
		term := collapse(state.Search)
		return strings.Contains(collapse(item.Title), term) ||
			strings.Contains(collapse(strVal(item.EnglishTitle)), term) ||
			strings.Contains(collapse(strVal(item.Creator)), term) ||
			strings.Contains(collapse(strVal(item.Genre)), term)
	}

	return true
}

func sortItems(items []*entity.Rating, mode SortMode) {
	switch mode {
	case SortScoreDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return scoreValue(items[i]) > scoreValue(items[j])
		})
	case SortScoreAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return scoreValue(items[i]) < scoreValue(items[j])
		})
	case SortTitleAsc:
		cl := collate.New(language.Und)
		sort.SliceStable(items, func(i, j int) bool {
			return cl.CompareString(items[i].Title, items[j].Title) < 0
		})
	default:
		// Newest first; a missing timestamp counts as 0 and sorts last.
		sort.SliceStable(items, func(i, j int) bool {
			return createdMillis(items[i]) > createdMillis(items[j])
		})
	}
}

func createdMillis(item *entity.Rating) int64 {
	if item.CreatedAt.IsZero() {
		return 0
	}
	return item.CreatedAt.UnixMilli()
}

func scoreValue(item *entity.Rating) float64 {
	if item.Score == nil {
		return 0
	}
	return *item.Score
}

// collapse lower-cases and strips all whitespace so search is
// case- and spacing-insensitive.
func collapse(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// splitTags splits a comma-separated genre string into trimmed,
// non-empty tags.
func splitTags(genre string) []string {
	if genre == "" {
		return nil
	}
	parts := strings.Split(genre, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
