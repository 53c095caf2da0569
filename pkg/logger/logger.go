package logger

// Logger :
// Describes a common interface used for logging purposes.
// A single method is needed to allow the logging of some
// messages based on a content and a severity.
//
// The `Trace` allows to log a message with the specified
// level under the specified module name. The module is used
// to group related messages together (e.g. "resolve", "retreat",
// "build") without needing a dedicated logger instance per
// component.
type Logger interface {
	Trace(level Severity, module string, message string)
}

// Noop :
// A logger that discards every message. Used as the default
// logger for packages that accept an optional `logger.Logger`
// so that callers never have to nil-check before tracing.
type Noop struct{}

// Trace :
// Discards the message.
func (Noop) Trace(level Severity, module string, message string) {}
