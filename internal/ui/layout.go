package ui

import "time"

// Screen geometry.
const (
	// chromeHeight covers the status line and the command bar.
	chromeHeight = 2

	// footerHeight is the notice line under the gallery.
	footerHeight = 1

	// cardHeight is a rendered card including its border.
	cardHeight = 4

	// cardGap separates cards horizontally.
	cardGap = 1

	// LayoutCompactWidth is the width below which the header drops labels.
	LayoutCompactWidth = 90
)

// Diagnostics log limits.
const (
	// LogTailLimit is the number of log lines read for the diagnostics view.
	LogTailLimit = 500
)

// Timing constants.
const (
	// DefaultPollTick is how often the UI checks the load store.
	DefaultPollTick = 250 * time.Millisecond
)
