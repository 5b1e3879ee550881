package services

import "fmt"

// ExtractionError means the uploaded bytes are not a readable PDF. Fatal to
// the run; there is no retry.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ValidationError reports missing or unusable input before any remote call
// is made. It is a warning, not a fault: the caller can retry with input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// RenderError means document assembly failed. No partial file is delivered.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// CompletionResult is the outcome of a single completion call. Exactly one
// of Text and Err is set. A failed call is an expected outcome, not an
// exception: it is surfaced in place of the text and the pipeline moves on.
type CompletionResult struct {
	Text string
	Err  error
}

func (r CompletionResult) OK() bool { return r.Err == nil }

// ErrorMessage returns the failure description, or "" on success.
func (r CompletionResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
