package counting

import (
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/unit"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

type service struct {
	reader ports.SourceReader
	logger ports.Logger
}

// NewService creates a new counting service.
// It panics if reader or logger are nil.
func NewService(reader ports.SourceReader, logger ports.Logger) ports.CountingService {
	if reader == nil {
		panic("sourceReader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &service{reader: reader, logger: logger}
}

// Count reads the sources strictly in the given order and merges each
// source's table into the cumulative result. A source that fails to open or
// read is logged and contributes nothing.
func (s *service) Count(paths []string, kind unit.Kind) *frequency.Table {
	total := frequency.New()
	for _, path := range paths {
		lines, err := s.reader.ReadLines(path)
		if err != nil {
			s.logger.Errorf("skip file: %v", err)
			continue
		}
		perSource := s.CountLines(lines, kind)
		s.logger.Debugf("counted %s: %d lines, %d distinct %ss", path, len(lines), perSource.Len(), kind)
		total.MergeTable(perSource)
	}
	return total
}

// CountLines splits every line by kind and folds the per-line tables together.
func (s *service) CountLines(lines []string, kind unit.Kind) *frequency.Table {
	acc := frequency.New()
	for _, line := range lines {
		acc.MergeTable(frequency.Count(line, kind))
	}
	return acc
}
