package engine

import (
	"github.com/five82/itemdeck/internal/catalog"
)

// State is the session phase.
type State int

const (
	// Welcome shows the entry panel and no gallery.
	Welcome State = iota
	// SearchActive shows the compact entry panel above the search results.
	SearchActive
	// RangeActive hides the entry panel and shows the range results.
	RangeActive
)

func (s State) String() string {
	switch s {
	case SearchActive:
		return "search"
	case RangeActive:
		return "range"
	default:
		return "welcome"
	}
}

// Card is one rendered gallery entry.
type Card struct {
	ID       int64
	Name     string
	AssetRef string
}

// Session owns the catalog, the active query and everything derived from it.
// Every method is an inbound event or a read for the render step. A Session
// is not safe for concurrent use; events must be applied one at a time.
type Session struct {
	assetBase string

	readiness catalog.Readiness
	loadErr   error
	items     []catalog.Item

	state      State
	query      Query
	searchText string

	pager   *Pager
	mask    Mask
	overlay *Card
}

// NewSession returns a session in the Welcome state with the catalog loading.
func NewSession(assetBase string, batchSize int) *Session {
	return &Session{
		assetBase: assetBase,
		pager:     NewPager(batchSize),
	}
}

// CatalogLoaded installs the catalog. It is ignored unless the catalog is
// still loading, so a late response can never override a terminal state.
func (s *Session) CatalogLoaded(items []catalog.Item) bool {
	if s.readiness.Terminal() {
		return false
	}
	s.items = items
	s.readiness = catalog.Ready
	return true
}

// CatalogFailed marks the load as failed. Ignored after a terminal state.
func (s *Session) CatalogFailed(err error) bool {
	if s.readiness.Terminal() {
		return false
	}
	s.loadErr = err
	s.readiness = catalog.Failed
	return true
}

// QueryTextChanged handles an edit of the search box. Non-empty text enters
// or refreshes SearchActive; empty text returns to Welcome. Ignored while a
// range is shown.
func (s *Session) QueryTextChanged(text string) {
	if s.state == RangeActive {
		return
	}
	s.searchText = text
	q := NewTextQuery(text)
	if q == nil {
		s.state = Welcome
		s.discardResults()
		return
	}
	s.state = SearchActive
	s.apply(q)
}

// RangeSubmit evaluates an inclusive ID range. It only acts from Welcome and
// only once the catalog is ready; otherwise it reports false.
func (s *Session) RangeSubmit(low, high float64) bool {
	if s.state != Welcome || s.readiness != catalog.Ready {
		return false
	}
	s.state = RangeActive
	s.apply(RangeQuery{Low: low, High: high})
	return true
}

// Back returns to Welcome, discarding the query, its results and the
// failure mask.
func (s *Session) Back() bool {
	if s.state == Welcome {
		return false
	}
	s.state = Welcome
	s.searchText = ""
	s.discardResults()
	s.mask.Clear()
	s.overlay = nil
	return true
}

// ViewportNearEnd grows the visible window by one batch. Spurious calls are
// harmless. It reports whether the window grew.
func (s *Session) ViewportNearEnd() bool {
	if s.query == nil {
		return false
	}
	return s.pager.Extend()
}

// AssetLoadError masks id for the rest of the session. It reports whether the
// id was newly masked.
func (s *Session) AssetLoadError(id int64) bool {
	return s.mask.Add(id)
}

// ItemActivated opens the overlay for a rendered item, replacing any open one.
func (s *Session) ItemActivated(id int64) bool {
	if s.query == nil || s.mask.Has(id) {
		return false
	}
	for _, item := range s.pager.Window() {
		if item.ID == id {
			card := s.card(item)
			s.overlay = &card
			return true
		}
	}
	return false
}

// OverlayDismissed closes the overlay.
func (s *Session) OverlayDismissed() {
	s.overlay = nil
}

// State returns the session phase.
func (s *Session) State() State {
	return s.state
}

// Readiness returns the catalog load state.
func (s *Session) Readiness() catalog.Readiness {
	return s.readiness
}

// LoadError returns the catalog load failure, if any.
func (s *Session) LoadError() error {
	return s.loadErr
}

// CatalogSize returns the number of loaded items.
func (s *Session) CatalogSize() int {
	return len(s.items)
}

// Query returns the active query or nil.
func (s *Session) Query() Query {
	return s.query
}

// SearchText returns the raw search box contents.
func (s *Session) SearchText() string {
	return s.searchText
}

// Compact reports whether the entry panel is shown in its compact form.
func (s *Session) Compact() bool {
	return s.state == SearchActive
}

// GalleryVisible reports whether a result set is being shown.
func (s *Session) GalleryVisible() bool {
	return s.state != Welcome
}

// ResultCount returns the size of the current result set.
func (s *Session) ResultCount() int {
	return s.pager.Len()
}

// Cursor returns the visible window length.
func (s *Session) Cursor() int {
	return s.pager.Cursor()
}

// Exhausted reports whether the whole result set is visible.
func (s *Session) Exhausted() bool {
	return s.pager.Exhausted()
}

// Masked returns the number of masked IDs.
func (s *Session) Masked() int {
	return s.mask.Len()
}

// Rendered returns the visible window minus masked items.
func (s *Session) Rendered() []Card {
	if s.query == nil {
		return nil
	}
	window := s.mask.Apply(s.pager.Window())
	cards := make([]Card, len(window))
	for i, item := range window {
		cards[i] = s.card(item)
	}
	return cards
}

// Overlay returns the open detail item.
func (s *Session) Overlay() (Card, bool) {
	if s.overlay == nil {
		return Card{}, false
	}
	return *s.overlay, true
}

func (s *Session) apply(q Query) {
	s.query = q
	s.pager.Reset(Filter(s.items, q))
}

func (s *Session) discardResults() {
	s.query = nil
	s.pager.Clear()
}

func (s *Session) card(item catalog.Item) Card {
	return Card{
		ID:       item.ID,
		Name:     item.DisplayName(),
		AssetRef: catalog.AssetRef(s.assetBase, item.ID),
	}
}
