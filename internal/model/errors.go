package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a conversion failed.
type ErrorKind string

const (
	// ErrKindInvalidGridLetter means the square letter is not in the 5x5 table.
	ErrKindInvalidGridLetter ErrorKind = "invalid_grid_letter"

	// ErrKindInvalidGridDigits means an easting or northing digit string is
	// not exactly five decimal digits.
	ErrKindInvalidGridDigits ErrorKind = "invalid_grid_digits"

	// ErrKindOutOfRange means the value cannot be represented in the target
	// system (negative, more than six digits, or a square digit above 4).
	ErrKindOutOfRange ErrorKind = "out_of_range"

	// ErrKindMalformedInput means the input could not be tokenized or parsed
	// (wrong number of fields, non-numeric text where a number is expected).
	ErrKindMalformedInput ErrorKind = "malformed_input"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// Stage names the conversion step that produced an error.
type Stage string

const (
	StageParse     Stage = "parse"
	StageDecode    Stage = "decode"
	StageEncode    Stage = "encode"
	StageProject   Stage = "project"
	StageUnproject Stage = "unproject"
)

// String returns the string representation of Stage.
func (s Stage) String() string {
	return string(s)
}

// Sentinel errors for use with errors.Is. A *ConversionError matches the
// sentinel of the same ErrorKind regardless of stage or message.
var (
	ErrInvalidGridLetter = errors.New(string(ErrKindInvalidGridLetter))
	ErrInvalidGridDigits = errors.New(string(ErrKindInvalidGridDigits))
	ErrOutOfRange        = errors.New(string(ErrKindOutOfRange))
	ErrMalformedInput    = errors.New(string(ErrKindMalformedInput))
)

// sentinels maps each ErrorKind to its errors.Is target.
var sentinels = map[ErrorKind]error{
	ErrKindInvalidGridLetter: ErrInvalidGridLetter,
	ErrKindInvalidGridDigits: ErrInvalidGridDigits,
	ErrKindOutOfRange:        ErrOutOfRange,
	ErrKindMalformedInput:    ErrMalformedInput,
}

// ConversionError is the typed failure returned by every conversion step.
// It never crosses the library boundary as a panic; callers receive it as
// an ordinary error value and may inspect Kind and Stage.
type ConversionError struct {
	// Kind classifies the failure.
	Kind ErrorKind `json:"kind" yaml:"kind"`

	// Stage is the step that failed.
	Stage Stage `json:"stage" yaml:"stage"`

	// Input is the offending text or value, for diagnostics.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// Message is a human-readable description.
	Message string `json:"message" yaml:"message"`
}

// NewConversionError creates a ConversionError with a formatted message.
func NewConversionError(kind ErrorKind, stage Stage, input string, format string, args ...interface{}) *ConversionError {
	return &ConversionError{
		Kind:    kind,
		Stage:   stage,
		Input:   input,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error satisfies the error interface.
func (e *ConversionError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (%s): %q", e.Stage, e.Message, e.Kind, e.Input)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Stage, e.Message, e.Kind)
}

// Is reports whether target is the sentinel for this error's kind, or
// another *ConversionError with the same kind.
func (e *ConversionError) Is(target error) bool {
	if sentinel, ok := sentinels[e.Kind]; ok && target == sentinel {
		return true
	}
	var other *ConversionError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// AsConversionError extracts a *ConversionError from err. Errors of any
// other type are classified as malformed input at the given stage so that
// callers always get a typed failure.
func AsConversionError(err error, stage Stage) *ConversionError {
	if err == nil {
		return nil
	}
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr
	}
	return &ConversionError{Kind: ErrKindMalformedInput, Stage: stage, Message: err.Error()}
}

// Result is the tagged outcome of a single conversion: exactly one of
// Value and Err is set.
type Result struct {
	// Value is the converted coordinate on success.
	Value Coordinate

	// Err describes the failure.
	Err *ConversionError
}

// Ok wraps a successful conversion.
func Ok(v Coordinate) Result {
	return Result{Value: v}
}

// Fail wraps a failed conversion.
func Fail(err *ConversionError) Result {
	return Result{Err: err}
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// ExitCode defines the CLI exit codes. Scripts can rely on these to tell
// bad input apart from rows that failed to convert.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates invalid flags or unreadable input rows.
	ExitInvalidInput ExitCode = 2

	// ExitConversionFailed indicates at least one row failed to convert
	// while strict mode was enabled.
	ExitConversionFailed ExitCode = 3

	// ExitConfigError indicates the configuration file could not be loaded.
	ExitConfigError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
