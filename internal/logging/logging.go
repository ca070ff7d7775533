// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the diagnostic logger shared by all commands.
// Diagnostics go to stderr; command results stay on stdout.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps normal runs quiet apart from the summary line.
const DefaultLevel = "warn"

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "funnel-normalize",
	}), nil
}

// Setup installs a logger writing to w at the named level as the package
// default used by log.Debug, log.Info and friends.
func Setup(w io.Writer, level string) error {
	logger, err := New(w, level)
	if err != nil {
		return err
	}
	log.SetDefault(logger)
	return nil
}

// ParseLevel maps debug, info, warn (or warning), and error to a log level.
// An empty string selects DefaultLevel.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "", DefaultLevel, "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q: use debug, info, warn, or error", level)
	}
}
