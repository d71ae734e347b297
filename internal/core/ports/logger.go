package ports

// Logger is the structured logging contract shared by every component.
// keysAndValues are alternating key/value pairs, e.g. "order_id", 42.
// Implementations must be safe for concurrent use.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, err error, keysAndValues ...any)

	// With returns a Logger that adds keysAndValues to every entry.
	With(keysAndValues ...any) Logger
}
