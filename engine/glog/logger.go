// Package glog is the module-wide logging indirection for the translator.
// By default the translator produces no log output; call SetLogger to wire
// it into the host application's logging setup.
//
// Grounded on gogpu/wgpu's hal.SetLogger: an atomically-swappable *slog.Logger
// behind a package-level accessor, defaulting to a silent handler so that
// disabled logging costs nothing beyond the atomic load.
package glog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler silently discards all log records. Enabled returns false so the
// caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the translator core and the host
// glue packages (compiler, devshell). Pass nil to restore silent behavior.
//
// Log levels used by this module:
//   - [slog.LevelDebug]: recoverable guest register malformation (§7 class 1)
//   - [slog.LevelDebug]: per-draw profiler span timings
//   - [slog.LevelWarn]: graphics binding commit failures and their retry
//     (§7 class 2), draw preamble failures, stale shader fallback
//   - [slog.LevelInfo]: periodic profiler frame statistics
//
// Parameters:
//   - l: the logger to install, or nil to disable logging
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the currently installed logger.
//
// Returns:
//   - *slog.Logger: the active logger
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
