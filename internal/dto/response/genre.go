package response

// GenreFacetResponse carries the facet options plus the selection that
// stays in effect: the caller's current choice when it still exists,
// otherwise the "all" sentinel.
type GenreFacetResponse struct {
	Options  []string `json:"options"`
	Selected string   `json:"selected"`
}
