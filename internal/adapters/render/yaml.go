package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// RawDump renders the raw unit-to-count mapping as a YAML document.
type RawDump struct{}

// NewRawDump creates a YAML mapping renderer.
func NewRawDump() ports.Renderer {
	return &RawDump{}
}

// Render implements the ports.Renderer interface. Keys are sorted by the
// encoder; an empty table renders as "{}".
func (r *RawDump) Render(table *frequency.Table) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(table.Clone().IntoMap()); err != nil {
		return "", fmt.Errorf("failed to encode frequency table: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode frequency table: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
