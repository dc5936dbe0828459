// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogPrefix is the prefix of every diagnostic log line.
const LogPrefix = "gvox-cli"

// NewLogger returns the diagnostics logger. Verbose mode logs at debug level;
// otherwise only warnings and errors are written.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: LogPrefix,
		Level:  level,
	})
}

// Discard returns a logger that writes nothing. It is the default for
// components constructed without one.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
