package ports

import "github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"

// Renderer turns a frequency table into printable text without a trailing newline.
type Renderer interface {
	Render(table *frequency.Table) (string, error)
}
