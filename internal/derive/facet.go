package derive

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"rating-catalog/internal/data/entity"
)

// GenreAll is the sentinel option meaning "no genre filter".
const GenreAll = "all"

// Genres derives the distinct genre tags across the snapshot, sorted,
// with the "all" sentinel first. Uniqueness is case-sensitive.
func Genres(items []*entity.Rating) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, item := range items {
		if item == nil || item.Genre == nil {
			continue
		}
		for _, tag := range splitTags(*item.Genre) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	collate.New(language.Und).SortStrings(tags)

	return append([]string{GenreAll}, tags...)
}

// KeepSelection preserves the current facet selection across a
// recomputation if it is still offered, otherwise falls back to "all".
func KeepSelection(options []string, current string) string {
	for _, opt := range options {
		if opt == current {
			return current
		}
	}
	return GenreAll
}
