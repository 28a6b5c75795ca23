package engine

import "github.com/five82/itemdeck/internal/catalog"

// Filter returns the items matching q, in catalog order. A nil query yields
// nil (no result set); an empty catalog or no matches yields an empty,
// non-nil slice. The input is never modified.
func Filter(items []catalog.Item, q Query) []catalog.Item {
	if q == nil {
		return nil
	}
	match := q.matcher()
	result := make([]catalog.Item, 0, len(items)/4)
	for _, item := range items {
		if match(item) {
			result = append(result, item)
		}
	}
	return result
}
