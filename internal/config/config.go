// Package config handles application configuration and setup
package config

import (
	"io"
	"os"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
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

// UseColor resolves the color mode for the given output. In auto mode colors
// are only used when the output is a terminal and NO_COLOR is not set.
func UseColor(mode string, output io.Writer) bool {
	switch mode {
	case options.ColorAlways:
		return true
	case options.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := output.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
