// Package state hands the catalog load outcome from the loader goroutine to
// the UI.
//
// # Architecture
//
//	Loader goroutine:               UI (bubbletea update loop):
//	┌──────────────────┐            ┌──────────────────────┐
//	│ store.Begin()    │            │ tick                 │
//	│ FetchCatalog()   │            │   store.Snapshot()   │
//	│ store.Resolve()  │──(mutex)──>│   readiness changed? │
//	└──────────────────┘            │   → session event    │
//	                                └──────────────────────┘
//
// # Update Semantics
//
// The catalog is fetched once. The first Resolve call wins:
//
//	store.Resolve(items, nil)  → Readiness = Ready, Items = items
//	store.Resolve(nil, err)    → Readiness = Failed, LastError = err
//	store.Resolve(...) again   → ignored, returns false
//
// Dropping late outcomes keeps a failed session from coming back to life if
// a slow response arrives after the failure was already shown.
//
// # Defensive Copying
//
// Snapshot clones the item slice and wraps the error so the UI can hold on to
// a snapshot while the loader is still running.
//
// The Store is safe to use as a zero value.
package state
