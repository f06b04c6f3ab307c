package ports

import (
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/unit"
)

// CountingService defines the contract for aggregating unit frequencies across sources.
type CountingService interface {
	// Count reads every source in order and returns the cumulative table.
	// Sources that cannot be opened or read are skipped.
	Count(paths []string, kind unit.Kind) *frequency.Table

	// CountLines folds already-read lines into a single table.
	CountLines(lines []string, kind unit.Kind) *frequency.Table
}
