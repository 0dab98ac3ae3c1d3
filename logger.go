package ergo

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false, which lets
// debugEnabled short-circuit before any attribute is built.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. SetLogger may race with drawing on
// other goroutines' Contexts.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ergo.
// By default, ergo produces no log output. Pass nil to restore that.
//
// Log levels used by ergo:
//   - [slog.LevelDebug]: canvas activation, screen resizes
//   - [slog.LevelWarn]: text drawing skipped because no font face could be built
//
// Example:
//
//	ergo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ergo.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugEnabled reports whether the current logger wants Debug records.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
