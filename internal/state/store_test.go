package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/itemdeck/internal/catalog"
)

func TestStore_ZeroValueIsLoading(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.Readiness != catalog.Loading {
		t.Fatalf("Readiness = %v, want loading", snap.Readiness)
	}
	if snap.Elapsed() != 0 {
		t.Fatalf("Elapsed = %v, want 0 before Begin", snap.Elapsed())
	}
}

func TestStore_ResolveAndSnapshotClone(t *testing.T) {
	var s Store
	s.Begin()

	before := time.Now()
	if !s.Resolve([]catalog.Item{{ID: 1, Name: "Alpha"}, {ID: 2}}, nil) {
		t.Fatalf("Resolve returned false on first outcome")
	}

	snap := s.Snapshot()
	if snap.Readiness != catalog.Ready || len(snap.Items) != 2 {
		t.Fatalf("snapshot = %v with %d items, want ready/2", snap.Readiness, len(snap.Items))
	}
	if snap.LoadedAt.Before(before) {
		t.Fatalf("LoadedAt = %v, want >= %v", snap.LoadedAt, before)
	}
	if snap.Elapsed() < 0 {
		t.Fatalf("Elapsed = %v, want >= 0", snap.Elapsed())
	}

	// Returned snapshot should be independent of the stored one.
	snap.Items[0].ID = 999
	if s.Snapshot().Items[0].ID != 1 {
		t.Fatalf("Snapshot should clone items")
	}
}

func TestStore_TerminalStateIsFinal(t *testing.T) {
	var s Store
	origErr := errors.New("boom")
	if !s.Resolve(nil, origErr) {
		t.Fatalf("Resolve(err) returned false on first outcome")
	}
	if s.Resolve([]catalog.Item{{ID: 1}}, nil) {
		t.Fatalf("late success was accepted after failure")
	}
	s.Begin()

	snap := s.Snapshot()
	if snap.Readiness != catalog.Failed || len(snap.Items) != 0 {
		t.Fatalf("snapshot = %v with %d items, want failed/0", snap.Readiness, len(snap.Items))
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !snap.StartedAt.IsZero() {
		t.Fatalf("Begin after a terminal state should not move StartedAt")
	}
}

func TestStore_ReadyIgnoresLateFailure(t *testing.T) {
	var s Store
	s.Resolve([]catalog.Item{{ID: 1}}, nil)
	if s.Resolve(nil, errors.New("late")) {
		t.Fatalf("late failure was accepted after success")
	}
	if snap := s.Snapshot(); snap.Readiness != catalog.Ready || snap.LastError != nil {
		t.Fatalf("snapshot = %v err=%v, want ready", snap.Readiness, snap.LastError)
	}
}
