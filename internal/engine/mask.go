package engine

import "github.com/five82/itemdeck/internal/catalog"

// Mask is the set of item IDs whose asset failed to load. Membership only
// affects rendering; it never changes a result set or pager cursor.
type Mask struct {
	ids map[int64]struct{}
}

// Add masks id. It reports whether the id was newly added.
func (m *Mask) Add(id int64) bool {
	if m.ids == nil {
		m.ids = make(map[int64]struct{})
	}
	if _, ok := m.ids[id]; ok {
		return false
	}
	m.ids[id] = struct{}{}
	return true
}

// Has reports whether id is masked.
func (m *Mask) Has(id int64) bool {
	_, ok := m.ids[id]
	return ok
}

// Len returns the number of masked IDs.
func (m *Mask) Len() int {
	return len(m.ids)
}

// Clear unmasks everything.
func (m *Mask) Clear() {
	m.ids = nil
}

// Apply returns the items not masked, preserving order.
func (m *Mask) Apply(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if m.Has(item.ID) {
			continue
		}
		out = append(out, item)
	}
	return out
}
