package engine

// Logger is the narrow structured-logging interface engine depends on,
// matching *zap.SugaredLogger's method shapes so cmd/crossmin can hand in
// a zap logger directly without engine importing zap itself.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// noopLogger discards everything; used when Options.Logger is nil.
type noopLogger struct{}

func (noopLogger) Debugw(string, ...interface{}) {}
func (noopLogger) Infow(string, ...interface{})  {}
func (noopLogger) Warnw(string, ...interface{})  {}
