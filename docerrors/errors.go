// Package docerrors provides structured error types for doclens.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - SpecificationError: structurally un-parseable specification documents
//   - DialectError: a dialect marker is present but its value is unrecognized
//   - FetchError: network/transport failures retrieving a remote document
//   - AnalysisError: LLM gateway failures or unparseable model output
//   - ConfigError: invalid configuration or input options
package docerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidSpecification indicates a document that is not a recognizable
	// API specification: neither dialect marker is present, or the root or
	// paths structure is fundamentally malformed.
	ErrInvalidSpecification = errors.New("invalid specification")

	// ErrUnsupportedDialect indicates a dialect marker was found but its
	// value is neither 2.x-shaped nor 3.x-shaped.
	ErrUnsupportedDialect = errors.New("unsupported dialect")

	// ErrFetchFailed indicates a network or transport failure while
	// retrieving a remote document.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrAnalysisFailed indicates the LLM gateway errored or returned
	// output that does not contain a parseable JSON object.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// SpecificationError represents a document that cannot be treated as an
// API specification at all. Missing-field situations never produce this
// error; the normalizer fills those with per-field defaults.
type SpecificationError struct {
	// Path is the JSON path to the problematic structure, if known
	Path string
	// Message describes why the document is unusable
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SpecificationError) Error() string {
	msg := "invalid specification"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SpecificationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SpecificationError) Is(target error) bool {
	return target == ErrInvalidSpecification
}

// DialectError represents a dialect marker whose value is not recognized as
// either Swagger 2.0 or OpenAPI 3.x.
type DialectError struct {
	// Marker is the key that carried the dialect ("openapi" or "swagger")
	Marker string
	// Value is the unrecognized dialect string
	Value string
}

// Error returns a human-readable error message.
func (e *DialectError) Error() string {
	msg := "unsupported dialect"
	if e.Marker != "" {
		msg += fmt.Sprintf(" (%s: %q)", e.Marker, e.Value)
	} else if e.Value != "" {
		msg += fmt.Sprintf(": %q", e.Value)
	}
	return msg
}

// Unwrap returns nil as DialectError has no underlying cause.
func (e *DialectError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *DialectError) Is(target error) bool {
	return target == ErrUnsupportedDialect
}

// FetchError represents a failure to retrieve a remote document.
type FetchError struct {
	// URL is the document location that failed to load
	URL string
	// StatusCode is the HTTP status received, if the request completed (0 otherwise)
	StatusCode int
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	msg := "fetch failed"
	if e.URL != "" {
		msg += " for " + e.URL
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// AnalysisError represents a failure in the LLM analysis gateway: either the
// remote call itself errored, or the returned text did not contain a
// parseable JSON object.
type AnalysisError struct {
	// Operation identifies what was being analyzed (e.g. "analyze_documentation")
	Operation string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *AnalysisError) Error() string {
	msg := "analysis failed"
	if e.Operation != "" {
		msg += " during " + e.Operation
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *AnalysisError) Is(target error) bool {
	return target == ErrAnalysisFailed
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and unsupported
// target languages in the generators.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
