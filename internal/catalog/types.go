package catalog

import "strconv"

// Placeholder is rendered in place of a missing item name.
const Placeholder = "—"

// Item mirrors one entry of the remote inventory table.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// HasName reports whether the item carries a name. Whitespace counts.
func (i Item) HasName() bool {
	return i.Name != ""
}

// DisplayName returns the name, or Placeholder when the item has none.
func (i Item) DisplayName() string {
	if !i.HasName() {
		return Placeholder
	}
	return i.Name
}

// IDText returns the decimal form of the ID used for substring matching.
func (i Item) IDText() string {
	return strconv.FormatInt(i.ID, 10)
}

// AssetRef derives the image URL for an item: base + id + ".webp".
func AssetRef(base string, id int64) string {
	return base + strconv.FormatInt(id, 10) + ".webp"
}

// Readiness is the catalog load state.
type Readiness int

const (
	Loading Readiness = iota
	Ready
	Failed
)

// Terminal reports whether the load has finished, successfully or not.
func (r Readiness) Terminal() bool {
	return r == Ready || r == Failed
}

func (r Readiness) String() string {
	switch r {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}
