package config

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds a logger writing to w at the level named by
// TANKFALL_LOG_LEVEL (info when unset).
func NewLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level := log.InfoLevel
	if name := GetEnv(EnvLogLevel, ""); name != "" {
		parsed, err := log.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
		level = parsed
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
