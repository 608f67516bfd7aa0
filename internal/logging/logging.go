// SPDX-License-Identifier: MPL-2.0

// Package logging builds the process logger for the measure CLI.
//
// Library packages accept a *slog.Logger; the CLI hands them one backed by a
// charmbracelet/log logger so records are styled for the terminal.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every record.
const Prefix = "measure"

// Options configures New.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// ReportTimestamp prefixes records with the time of day.
	ReportTimestamp bool
}

// New returns a slog logger writing to w through a charmbracelet/log handler.
// Records below info are dropped unless opts.Verbose is set.
func New(w io.Writer, opts Options) *slog.Logger {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: opts.ReportTimestamp,
		TimeFormat:      "15:04:05",
	})
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
