// Package engineerror defines the typed errors raised at the engine boundary.
// Malformed input fails fast here, before the engine runs; inside the engine
// data-quality anomalies degrade to defaults and never surface as errors.
package engineerror

import "fmt"

// RecordError reports a malformed field on one input record.
type RecordError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: invalid %s=%q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// IngestError reports a failure reading or parsing an input file as a whole.
type IngestError struct {
	Path string
	Err  error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("ingesting %s: %v", e.Path, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}
