// Package ui provides the itemdeck terminal interface.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns an engine.Session and is the
// only code that drives it: every keystroke, store snapshot and asset probe
// result arrives as a tea.Msg in Update, which turns it into one Session
// event and re-renders from the Session's reads. Nothing here filters,
// pages or masks items itself.
//
// # Package Structure
//
//   - app.go: Model, Update loop, messages and commands, Run
//   - header.go: status line (connection badge, counters) and command bar
//   - panel.go: welcome panel with the search and range fields
//   - gallery.go: card grid and selection
//   - overlay.go: item detail overlay
//   - logs.go: diagnostics view over itemdeck's own log file
//   - help.go, keys.go: key map and help overlay
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Views
//
//   - Welcome: title, search field, range form with the OPEN button
//   - Search: compact search row above the gallery
//   - Range: one-line range summary above the gallery
//   - Overlay: detail of one item; takes all keys until closed
//   - Diagnostics: tail of the log file (L)
//
// # Loading and Paging
//
// A tick polls state.Store until the catalog load resolves, then forwards
// the outcome to the Session once. The gallery reports viewport exhaustion
// whenever its last row is on screen, so the window grows in batches as the
// selection moves down and fills tall terminals on its own.
//
// # Assets
//
// Each rendered item's image is probed once with a HEAD request through the
// configured catalog.AssetChecker. A failed probe arrives as assetErrorMsg
// and hides the item. Going back to the welcome screen forgets which items
// were probed, matching the fresh render that follows.
//
// # Key Bindings
//
//	/          Focus search
//	tab        Next field
//	enter      Open range / open item
//	arrows     Move (hjkl also work)
//	g/G        Top/bottom
//	b, esc     Back to start
//	y          Copy asset URL (overlay)
//	T          Cycle theme
//	+/-        Card width
//	L          Diagnostics log
//	?          Help
//	ctrl+c     Quit
package ui
