// Package figures is the summary-figure composition engine: it turns the
// typed rainfall tables into fully laid-out multi-panel chart objects for
// the dashboard. Builders are synchronous and call-scoped; the only shared
// input is the read-only theme.
package figures

import (
	"github.com/taruma/dash-hidrokit-rainfall/internal/logger"
	"github.com/taruma/dash-hidrokit-rainfall/internal/theme"
)

// Rendering-cost circuit breakers. Yearly summaries bypass them: yearly data
// has already been downsampled upstream and is always small enough to render.
const (
	// SummaryCellThreshold is the summary cell count above which an
	// interactive summary figure is replaced with a static placeholder.
	SummaryCellThreshold = (367 * 8) / 2

	// XAxisLengthThreshold is the longest time index rendered with one tick
	// per entry; longer indexes are decimated and, for summaries, guarded.
	XAxisLengthThreshold = 12 * 2 * 5

	// RawSizeThreshold is the raw-table cell count above which the raw view
	// always falls back from bars to a line scatter.
	RawSizeThreshold = 365 * 8
)

// PlaceholderText is the message carried by the oversized-dataset placeholder.
const PlaceholderText = "dataset above threshold"

// Builder composes chart figures using one theme. It holds no per-call state;
// a single Builder is safe for concurrent use.
type Builder struct {
	theme *theme.Theme
	log   *logger.Logger
}

// NewBuilder creates a figure builder for the given theme.
func NewBuilder(t *theme.Theme) *Builder {
	return &Builder{
		theme: t,
		log:   logger.Global().WithComponent("figures"),
	}
}

// exceedsThresholds is the oversized-dataset guard: true means the caller
// must emit the static placeholder instead of a real chart.
func exceedsThresholds(cellCount, indexLen int, period Period) bool {
	if period == PeriodYearly {
		return false
	}
	return cellCount > SummaryCellThreshold || indexLen > XAxisLengthThreshold
}
