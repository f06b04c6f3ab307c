package testutil

import (
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
}

// MockLogger records formatted messages instead of writing them.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) record(level, format string, args ...interface{}) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (m *MockLogger) Debugf(format string, args ...interface{}) { m.record("debug", format, args...) }
func (m *MockLogger) Infof(format string, args ...interface{}) { m.record("info", format, args...) }
func (m *MockLogger) Warnf(format string, args ...interface{}) { m.record("warn", format, args...) }
func (m *MockLogger) Errorf(format string, args ...interface{}) { m.record("error", format, args...) }

// ByLevel returns the messages logged at level.
func (m *MockLogger) ByLevel(level string) []string {
	var msgs []string
	for _, e := range m.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

var _ ports.Logger = (*MockLogger)(nil)
