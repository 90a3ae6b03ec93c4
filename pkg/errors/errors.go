// Package errors provides custom error types for the apidrift system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the apidrift system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedRecord indicates a single extracted record failed to parse
	ErrMalformedRecord = errors.New("malformed record")

	// ErrShapeMismatch indicates a source's top-level shape differed from expectation
	ErrShapeMismatch = errors.New("structural shape mismatch")

	// ErrInvariantViolation indicates internal data broke a documented invariant
	ErrInvariantViolation = errors.New("invariant violation")
)

// MalformedRecordError represents a single source record that failed to
// parse. Recovery is local: the record is skipped, never the batch.
type MalformedRecordError struct {
	Source string
	Record string
	Reason string
}

// Error implements the error interface
func (e *MalformedRecordError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("malformed record %q from %s: %s", e.Record, e.Source, e.Reason)
	}
	return fmt.Sprintf("malformed record from %s: %s", e.Source, e.Reason)
}

// Is implements errors.Is support
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// NewMalformedRecordError creates a new MalformedRecordError
func NewMalformedRecordError(source, record, reason string) *MalformedRecordError {
	return &MalformedRecordError{Source: source, Record: record, Reason: reason}
}

// ShapeError represents an entire source whose top-level shape differs from
// expectation (for example a keyed mapping where a list was expected) and
// could not be normalized at the input boundary.
type ShapeError struct {
	Source   string
	Expected string
	Got      string
}

// Error implements the error interface
func (e *ShapeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("source %s: expected %s, got %s", e.Source, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// Is implements errors.Is support
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// NewShapeError creates a new ShapeError
func NewShapeError(source, expected, got string) *ShapeError {
	return &ShapeError{Source: source, Expected: expected, Got: got}
}

// InvariantViolationError represents internal data that broke a documented
// invariant, such as a conflict referencing an API name absent from both
// live indexes. It is surfaced as a diagnostic and excluded from
// aggregation rather than raised fatally.
type InvariantViolationError struct {
	Invariant string
	Subject   string
}

// Error implements the error interface
func (e *InvariantViolationError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("invariant violation (%s): %s", e.Invariant, e.Subject)
	}
	return fmt.Sprintf("invariant violation: %s", e.Invariant)
}

// Is implements errors.Is support
func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// NewInvariantViolationError creates a new InvariantViolationError
func NewInvariantViolationError(invariant, subject string) *InvariantViolationError {
	return &InvariantViolationError{Invariant: invariant, Subject: subject}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMalformedRecord checks if an error is a malformed record error
func IsMalformedRecord(err error) bool {
	return errors.Is(err, ErrMalformedRecord)
}

// IsShapeMismatch checks if an error is a structural shape mismatch
func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

// IsInvariantViolation checks if an error is an invariant violation
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
