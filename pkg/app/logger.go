package app

import (
	"go.uber.org/zap"
)

// NewLogger builds the debug logger for the interactive console. The TUI owns
// the terminal, so log output has to go to a file; an empty path returns a
// no-op logger.
func NewLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	return config.Build()
}
