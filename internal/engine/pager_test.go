package engine

import "testing"

func TestPager_GrowsInBatchesAndStopsAtEnd(t *testing.T) {
	items := Filter(sequentialCatalog(100), RangeQuery{Low: 1, High: 100})

	p := NewPager(40)
	p.Reset(items)
	if got := len(p.Window()); got != 40 {
		t.Fatalf("window after reset = %d, want 40", got)
	}

	for i, want := range []int{80, 100, 100, 100} {
		grew := p.Extend()
		if got := len(p.Window()); got != want {
			t.Fatalf("window after extend %d = %d, want %d", i+1, got, want)
		}
		if wantGrew := i < 2; grew != wantGrew {
			t.Fatalf("extend %d grew = %v, want %v", i+1, grew, wantGrew)
		}
	}
	if !p.Exhausted() {
		t.Fatalf("Exhausted = false, want true")
	}
}

func TestPager_ResetSmallerThanBatch(t *testing.T) {
	p := NewPager(40)
	p.Reset(sequentialCatalog(7))
	if p.Cursor() != 7 || p.Len() != 7 {
		t.Fatalf("cursor/len = %d/%d, want 7/7", p.Cursor(), p.Len())
	}
	if p.Extend() {
		t.Fatalf("Extend grew past the end")
	}
}

func TestPager_EmptyAndCleared(t *testing.T) {
	p := NewPager(0)
	if p.BatchSize() != DefaultBatchSize {
		t.Fatalf("BatchSize = %d, want %d", p.BatchSize(), DefaultBatchSize)
	}
	if len(p.Window()) != 0 || p.Extend() {
		t.Fatalf("empty pager should have no window and never grow")
	}

	p.Reset(sequentialCatalog(50))
	p.Clear()
	if p.Cursor() != 0 || p.Len() != 0 || len(p.Window()) != 0 {
		t.Fatalf("Clear left cursor=%d len=%d", p.Cursor(), p.Len())
	}
}

func TestPager_CoveringExtendsYieldFullResultSet(t *testing.T) {
	for _, size := range []int{0, 1, 39, 40, 41, 79, 80, 81, 257} {
		items := sequentialCatalog(size)
		p := NewPager(40)
		p.Reset(items)
		n := (size + 39) / 40
		for i := 0; i < n; i++ {
			p.Extend()
		}
		if !equalIDs(ids(p.Window()), ids(items)) {
			t.Fatalf("size %d: window has %d items after %d extends, want all", size, len(p.Window()), n)
		}
		p.Extend()
		if p.Cursor() != size {
			t.Fatalf("size %d: extra extend moved cursor to %d", size, p.Cursor())
		}
	}
}

func TestPager_WindowIsPrefix(t *testing.T) {
	items := sequentialCatalog(95)
	p := NewPager(40)
	p.Reset(items)
	for {
		w := p.Window()
		for i := range w {
			if w[i].ID != items[i].ID {
				t.Fatalf("window[%d] = %d, want %d", i, w[i].ID, items[i].ID)
			}
		}
		if !p.Extend() {
			break
		}
	}
}
