package split

import "go.uber.org/zap"

// Logger is a minimal logging interface used throughout the split package.
// It matches zap's SugaredLogger for Infof/Warnf.
type Logger interface {
	Infof(string, ...any)
	Warnf(string, ...any)
}

var logSink Logger = newDefaultLogger()

func newDefaultLogger() Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetLogger allows callers/tests to inject a custom logger (or noop) instead
// of the default zap logger. Passing nil resets to the default.
func SetLogger(l Logger) {
	if l == nil {
		logSink = newDefaultLogger()
		return
	}
	logSink = l
}
