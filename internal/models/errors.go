package models

import "fmt"

// ValidationError covers missing required fields and malformed filter
// parameters. The current action stops immediately; nothing partial runs.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Msg
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// FetchError is returned once the retry budget for the external fetch is
// exhausted. It is never collapsed into an empty result.
type FetchError struct {
	Query    string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %q failed after %d attempts: %v", e.Query, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ComputationError marks an aggregate that cannot be computed, e.g. the
// mean over zero posts. Distinct from a generic fault so callers can treat
// it as "insufficient data" rather than a bug.
type ComputationError struct {
	Msg string
}

func (e *ComputationError) Error() string {
	return "computation: " + e.Msg
}

// RenderError marks a fatal document-assembly failure. Missing optional
// sections degrade by being skipped and never surface as a RenderError.
type RenderError struct {
	Section string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Section, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
