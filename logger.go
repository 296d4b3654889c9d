package rt

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the package logger. It starts out discarding every record.
var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger installs l as the destination for rt's diagnostics.
// A nil logger discards them again, which is the default.
//
// rt records two kinds of events:
//   - [slog.LevelDebug] "canvas allocated" with width and height, and
//     "canvas saved" with path, format and dimensions
//   - [slog.LevelWarn] when a saved file fails to close, or a partially
//     written file cannot be removed after an encode error
//
// Example:
//
//	rt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger rt currently writes to.
// It may be called from any goroutine.
func Logger() *slog.Logger {
	return logger.Load()
}
