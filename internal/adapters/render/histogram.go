package render

import (
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// defaultWidth is the label width used when the table has no entries.
const defaultWidth = 10

// Histogram renders a frequency table as one asterisk bar per unit.
type Histogram struct {
	paintBar func(a ...interface{}) string
}

// HistogramOption configures a Histogram.
type HistogramOption func(*Histogram)

// WithBarPainter decorates every bar, e.g. with a color.SprintFunc.
func WithBarPainter(paint func(a ...interface{}) string) HistogramOption {
	return func(h *Histogram) {
		h.paintBar = paint
	}
}

// NewHistogram creates a histogram renderer.
func NewHistogram(opts ...HistogramOption) ports.Renderer {
	h := &Histogram{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Render implements the ports.Renderer interface.
func (h *Histogram) Render(table *frequency.Table) (string, error) {
	if h.paintBar == nil {
		return FormatHistogram(table), nil
	}
	return formatHistogram(table, func(bar string) string { return h.paintBar(bar) }), nil
}

/*
FormatHistogram renders table in descending count order, ties ordered by unit,
as lines of the form "<unit>:<count asterisks>". Units are right-aligned to the
widest unit, measured in Unicode scalar values. Lines are separated by a single
newline with none after the last; an empty table renders as "".
*/
func FormatHistogram(table *frequency.Table) string {
	return formatHistogram(table, nil)
}

func formatHistogram(table *frequency.Table, paint func(string) string) string {
	entries := table.Ranked()

	width := 0
	for _, e := range entries {
		width = max(width, utf8.RuneCountInString(e.Unit))
	}
	if len(entries) == 0 {
		width = defaultWidth
	}

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if pad := width - utf8.RuneCountInString(e.Unit); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(e.Unit)
		sb.WriteByte(':')
		bar := strings.Repeat("*", int(e.Count))
		if paint != nil && bar != "" {
			bar = paint(bar)
		}
		sb.WriteString(bar)
	}
	return sb.String()
}
