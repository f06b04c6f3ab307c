package logging

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// DefaultLevel is the diagnostic level used when none is configured.
const DefaultLevel = "info"

var _ ports.Logger = (*logrus.Logger)(nil)

// New creates a logrus logger writing plain-text diagnostics to out at level.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	return logger, nil
}
