package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryCLI        Category = "cli"
	CategoryValidation Category = "validation"
	CategoryTemplate   Category = "template"
	CategoryConfig     Category = "config"
	CategoryScaffold   Category = "scaffold"
)

// GenError is a structured error with a code, suggestions, and documentation.
type GenError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (cli, validation, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *GenError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *GenError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *GenError) WithDetail(d string) *GenError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *GenError) WithSuggestion(s string) *GenError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *GenError) Wrap(err error) *GenError {
	e.Wrapped = err
	return e
}

// New creates a GenError from a registered error code.
func New(code string) *GenError {
	template, ok := registry[code]
	if !ok {
		return &GenError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &GenError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new GenError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *GenError {
	return &GenError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a GenError.
func FromError(err error, code string) *GenError {
	if err == nil {
		return nil
	}
	if ge, ok := err.(*GenError); ok {
		return ge
	}
	return New(code).Wrap(err)
}
