// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateWriterOptions returns the listing writer options for the program options.
func CreateWriterOptions(opts options.Program) writer.Options {
	return writer.Options{
		HexComments:    !opts.NoHexComments,
		OffsetComments: !opts.NoOffsets,
		ZeroBytes:      opts.ZeroBytes,
	}
}
