package bounded

import "sync/atomic"

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger. Provide an adapter around your logging
// stack (see the log/zap, log/logrus and log/slog subpackages). The default
// is NopLogger; only the Weak force paths log - the strict types never do.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

type loggerBox struct{ l Logger }

var pkgLogger atomic.Value // loggerBox

// SetLogger installs the package logger. Passing nil restores NopLogger.
// Safe for concurrent use, though typically called once at init.
func SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	pkgLogger.Store(loggerBox{l})
}

func logger() Logger {
	if box, ok := pkgLogger.Load().(loggerBox); ok {
		return box.l
	}
	return NopLogger{}
}
