// Package logging provides a logging abstraction layer that decouples the
// application from the underlying logging framework. Analytical packages log
// through the Logger interface; the process wires in a logrus-backed
// implementation at startup.
package logging

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names for structured logging. Keeping these as
// constants keeps log output consistent across the analytical packages.
const (
	FieldYear     = "year"
	FieldYears    = "years"
	FieldRecords  = "records"
	FieldAccount  = "account"
	FieldSubClass = "sub_class"
	FieldType     = "type"
	FieldKeyword  = "keyword"
	FieldFile     = "file_path"
	FieldRow      = "row"
	FieldStrategy = "strategy"
	FieldAddr     = "addr"
	FieldOrigin   = "origin"
	FieldWarnings = "warnings"
	FieldDuration = "duration_ms"
)
