package blurkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// logger is the package-level logger. Defaults to a no-op logger.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by blurkit and its subpackages.
//
// By default, blurkit does not log anything. Pass a logger to enable
// diagnostics:
//
//	blurkit.SetLogger(slog.Default())
//
// Passing nil restores the no-op logger.
//
// Log levels used by blurkit:
//   - [slog.LevelDebug]: internal state (cache misses, rasterized strip sizes)
//   - [slog.LevelInfo]: nothing at present
//   - [slog.LevelWarn]: recoverable issues such as clamped parameters
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the logger set by [SetLogger], or a no-op logger if none
// has been set.
func Logger() *slog.Logger {
	return logger.Load()
}

// nopHandler is a slog.Handler that discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
