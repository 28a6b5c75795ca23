// Package app is the composition root for itemdeck.
//
// # Overview
//
// Run wires configuration, logging, the catalog client, the asset prober, the
// load store and the UI together, then blocks in the TUI until the operator
// quits or the context is cancelled.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read ~/.config/itemdeck/config.toml
//	       ├─────> logging.New()          Open the JSON log file
//	       ├─────> catalog.NewClient()    Catalog endpoint client
//	       ├─────> catalog.NewAssetProber Rate-limited, breaker-guarded HEAD probes
//	       ├─────> state.Store{}          Load outcome mailbox
//	       ├─────> StartLoader()          One-shot background fetch
//	       └─────> ui.Run()               Start TUI (blocks)
//
// # Loading Behavior
//
// The catalog is fetched exactly once. There is no polling and no retry: the
// UI shows SYNC while the request is in flight, ONLINE when it succeeded and
// OFFLINE when it failed. A failed load leaves text search usable (it simply
// finds nothing) and disables range submission for the rest of the session.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Log file cannot be created
//   - Catalog URL malformed
//
// Everything else (network failures, missing images) is shown in the UI or
// absorbed by it, and logged.
package app
