package types

import (
	"errors"
	"strconv"
)

// Sentinel errors for common failure scenarios.
var (
	// ErrEmptyStatement indicates an empty CQL statement was submitted.
	ErrEmptyStatement = errors.New("cqlstream: query statement cannot be empty")

	// ErrInvalidPageSize indicates a non-positive page size was configured.
	ErrInvalidPageSize = errors.New("cqlstream: page size must be positive")

	// ErrNilSession indicates that a nil session was provided.
	ErrNilSession = errors.New("cqlstream: session cannot be nil")

	// ErrStreamClosed indicates an operation was attempted on a closed
	// result stream.
	ErrStreamClosed = errors.New("cqlstream: result stream is closed")
)

// ExecError indicates that a query could not be submitted for execution.
// No result stream is produced when Execute fails with an ExecError.
type ExecError struct {
	// Cause is the underlying error: a validation sentinel or a driver error.
	Cause error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return "cqlstream: query execution failed: " + e.Cause.Error()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ExecError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError indicates a cell's declared CQL type has no conversion
// to the structured value model. This is surfaced rather than hidden: the
// caller decides whether to fail the row or the stream.
type UnsupportedTypeError struct {
	// TypeName is the declared CQL type, e.g. "custom" or "vector<float>".
	TypeName string
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return "cqlstream: unsupported CQL type " + strconv.Quote(e.TypeName)
}

// ArityMismatchError indicates a tuple value's slot count does not match its
// declared type's arity. The value is never truncated or padded.
type ArityMismatchError struct {
	// TypeName is the declared tuple type.
	TypeName string

	// Want is the arity declared by the type.
	Want int

	// Got is the slot count of the driver value.
	Got int
}

// Error implements the error interface.
func (e *ArityMismatchError) Error() string {
	return "cqlstream: tuple arity mismatch for " + e.TypeName +
		": declared " + strconv.Itoa(e.Want) + " slots, value has " + strconv.Itoa(e.Got)
}

// MismatchError indicates the driver value's Go type does not match what the
// declared CQL type requires, e.g. a string where a boolean was declared.
type MismatchError struct {
	// TypeName is the declared CQL type.
	TypeName string

	// GoType is the concrete Go type of the driver value.
	GoType string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return "cqlstream: cannot convert Go value of type " + e.GoType +
		" as CQL " + e.TypeName
}

// RowError indicates a row failed to materialize because one of its cells
// could not be converted. A single cell failure fails the whole row: a
// partial, silently degraded record is worse than a visible failure for a
// data-inspection tool.
type RowError struct {
	// Column is the name of the column whose cell failed.
	Column string

	// Cause is the underlying conversion error.
	Cause error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return "cqlstream: column " + strconv.Quote(e.Column) + " failed to convert: " + e.Cause.Error()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *RowError) Unwrap() error {
	return e.Cause
}

// StreamError indicates a result stream transitioned to its failed state,
// either because a page fetch failed or because a row failed to materialize.
// It is surfaced once at the point of failure; the stream never retries.
type StreamError struct {
	// Op names the operation that failed: "page fetch" or "materialize".
	Op string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *StreamError) Error() string {
	return "cqlstream: " + e.Op + " failed: " + e.Cause.Error()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *StreamError) Unwrap() error {
	return e.Cause
}

// Logger defines a minimal structured logging interface.
//
// Messages are accompanied by alternating key/value pairs. The interface is
// satisfied by a thin wrapper over zap.SugaredLogger's *w methods; a no-op
// implementation is used when no logger is configured.
type Logger interface {
	// Debug logs a debug-level message with key/value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info-level message with key/value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning-level message with key/value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error-level message with key/value pairs.
	Error(msg string, keysAndValues ...any)
}
