package glproc

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely,
// which keeps the resolve path free of logging cost by default.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while other goroutines resolve symbols.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for glproc and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by glproc:
//   - [slog.LevelDebug]: per-command resolution (variant skipped, slot stored)
//   - [slog.LevelInfo]: loader selection, context capabilities
//   - [slog.LevelWarn]: commands missing after an eager Preload
//
// Example:
//
//	glproc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by glproc.
// Sub-packages (gl/, platform/) call this so that one SetLogger call
// configures the whole module.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
