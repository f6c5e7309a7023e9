package core

// Logger is any leveled logger the application can report through.
// Implementations may inspect trailing args for known types (errors, the
// acting user) and forward them to an external error tracker.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
