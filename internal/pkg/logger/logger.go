package logger

// Logger defines the logging interface. The plain methods join their
// arguments into a single message; the *w variants take a message plus
// alternating key/value pairs emitted as structured attributes, e.g.
// log.Infow("created summary", "id", summary.ID).
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}
