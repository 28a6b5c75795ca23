package engine

import "github.com/five82/itemdeck/internal/catalog"

// DefaultBatchSize is the window growth step used when none is configured.
const DefaultBatchSize = 40

// Pager exposes a growing prefix of a result set. It has no notion of
// scrolling; callers tell it when the visible end has been reached.
type Pager struct {
	batch   int
	results []catalog.Item
	cursor  int
}

// NewPager returns a pager growing by batch items; non-positive values use
// DefaultBatchSize.
func NewPager(batch int) *Pager {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &Pager{batch: batch}
}

// BatchSize returns the growth step.
func (p *Pager) BatchSize() int {
	return p.batch
}

// Reset installs a new result set and re-seeds the cursor.
func (p *Pager) Reset(results []catalog.Item) {
	p.results = results
	p.cursor = min(p.batch, len(results))
}

// Extend grows the window by one batch. It reports whether the window grew;
// at the end of the result set it does nothing.
func (p *Pager) Extend() bool {
	if p.cursor >= len(p.results) {
		return false
	}
	p.cursor = min(p.cursor+p.batch, len(p.results))
	return true
}

// Window returns the visible prefix. The slice aliases the result set and
// must not be modified.
func (p *Pager) Window() []catalog.Item {
	return p.results[:p.cursor]
}

// Cursor returns the current window length.
func (p *Pager) Cursor() int {
	return p.cursor
}

// Len returns the size of the whole result set.
func (p *Pager) Len() int {
	return len(p.results)
}

// Exhausted reports whether the window already covers the result set.
func (p *Pager) Exhausted() bool {
	return p.cursor >= len(p.results)
}

// Clear drops the result set.
func (p *Pager) Clear() {
	p.results = nil
	p.cursor = 0
}
