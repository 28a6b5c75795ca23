// Package engine implements the catalog query and pagination core of itemdeck.
//
// # Overview
//
// The engine takes the full in-memory catalog and one active query, produces
// the matching result set, and hands the presentation layer a window of that
// result set that grows in fixed batches as the operator scrolls. Items whose
// image failed to load are hidden from the rendered list without disturbing
// the window arithmetic.
//
// # Data Flow
//
//	query text / range submit
//	        │
//	        ▼
//	┌──────────────┐   Filter()    ┌──────────┐  Window()  ┌──────────┐
//	│   Session    │──────────────>│  Pager   │───────────>│  Mask    │──> Rendered()
//	│ (state, query│   Reset()     │ (cursor) │            │ (ids)    │
//	│  readiness)  │<──────────────│          │            │          │
//	└──────────────┘ ViewportNear- └──────────┘            └──────────┘
//	                 End()/Extend()                 AssetLoadError()
//
// # Components
//
//   - query.go: TextQuery and RangeQuery, numeric detection and bound parsing
//   - filter.go: Filter, a pure []Item in / []Item out evaluation
//   - pager.go: Pager, the cursor over a result set
//   - mask.go: Mask, the set of IDs hidden after an asset failure
//   - session.go: Session, the state machine every UI event goes through
//
// # Session States
//
//	Welcome ──(search text non-empty)──> SearchActive
//	SearchActive ──(search text empty)──> Welcome
//	Welcome ──(range submit, catalog ready)──> RangeActive
//	SearchActive | RangeActive ──(Back)──> Welcome   (mask cleared)
//
// # Matching Rules
//
// A text term that reads as a number (decimal, exponent, 0x/0o/0b literal) is
// matched as a substring of the decimal ID, so "7" matches 7, 17 and 170. Any
// other term is matched as a substring of the lower-cased name; unnamed items
// never match. A name made only of digits is therefore unreachable by text
// search. Ranges are inclusive on both ends and a reversed range is empty.
//
// # Concurrency
//
// Nothing in this package locks. The UI applies events one at a time from its
// update loop; asynchronous work (catalog load, asset probes) reports back as
// events rather than touching the session directly.
package engine
