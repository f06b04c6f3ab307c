package render

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"github.com/olekukonko/tablewriter"
)

// CountTable renders a frequency table as a bordered two-column table.
type CountTable struct{}

// NewCountTable creates a table renderer.
func NewCountTable() ports.Renderer {
	return &CountTable{}
}

// Render implements the ports.Renderer interface. Rows follow the histogram
// order. An empty table renders as "".
func (r *CountTable) Render(table *frequency.Table) (string, error) {
	entries := table.Ranked()
	if len(entries) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader([]string{"Unit", "Count"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(true)
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, e := range entries {
		tw.Append([]string{displayUnit(e.Unit), strconv.FormatUint(uint64(e.Count), 10)})
	}
	tw.Render()
	return strings.TrimRight(buf.String(), "\n"), nil
}

// displayUnit quotes units that would be invisible or break the table layout.
func displayUnit(u string) string {
	if strings.TrimSpace(u) == "" || strings.IndexFunc(u, func(r rune) bool { return !unicode.IsPrint(r) && r != ' ' }) >= 0 {
		return strconv.Quote(u)
	}
	return u
}
