/*
Package render turns frequency tables into printable text.
*/
package render

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// Format names an output format.
type Format string

const (
	HistogramFormat Format = "histogram"
	TableFormat     Format = "table"
	YAMLFormat      Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []string{string(HistogramFormat), string(TableFormat), string(YAMLFormat)}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case HistogramFormat, TableFormat, YAMLFormat:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be one of %s", s, strings.Join(Formats, ", "))
}

// New returns the renderer for format. Histogram options are ignored by the
// other formats.
func New(format Format, opts ...HistogramOption) (ports.Renderer, error) {
	switch format {
	case HistogramFormat:
		return NewHistogram(opts...), nil
	case TableFormat:
		return NewCountTable(), nil
	case YAMLFormat:
		return NewRawDump(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}
