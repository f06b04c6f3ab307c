package testutil

import (
	"errors"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// MockSourceReader is a mock implementation of ports.SourceReader.
type MockSourceReader struct {
	ReadLinesFunc func(path string) ([]string, error)
	// ReadLinesCalls records the paths passed to ReadLines, in call order.
	ReadLinesCalls []string
}

// ReadLines calls the mock ReadLinesFunc.
func (m *MockSourceReader) ReadLines(path string) ([]string, error) {
	m.ReadLinesCalls = append(m.ReadLinesCalls, path)
	if m.ReadLinesFunc != nil {
		return m.ReadLinesFunc(path)
	}
	return nil, errors.New("MockSourceReader.ReadLinesFunc not implemented")
}

var _ ports.SourceReader = (*MockSourceReader)(nil)
