// Package config holds the flat, JSON-tagged configuration structs that
// parameterise batch operations, and the typed operation-status taxonomy
// every operation reports through (spec.md §7), grounded on the teacher's
// internal/model.AppConfig/CutSettings flat-struct style and on the
// ErrorType/error-struct pattern used elsewhere in the pack for typed
// domain errors.
package config

import "fmt"

// Status is the typed outcome of a batch or single-point operation
// (spec.md §7). Status implements error so callers can use errors.Is
// against the Status* sentinels directly.
type Status string

const (
	StatusOK              Status = "ok"
	StatusInvalidInput    Status = "invalid_input"
	StatusEmptySurface    Status = "empty_surface"
	StatusEmptyPath       Status = "empty_path"
	StatusDegenerateCutter Status = "degenerate_cutter"
	StatusImportFailed    Status = "import_failed"
)

// Error implements the error interface; Status is only ever surfaced as an
// error when it is not StatusOK.
func (s Status) Error() string {
	return fmt.Sprintf("operation status: %s", string(s))
}

// OpError pairs a Status with the detail that produced it, so callers get
// both a stable, switchable code and a human-readable reason.
type OpError struct {
	Status Status
	Reason string
}

func (e *OpError) Error() string {
	if e.Reason == "" {
		return e.Status.Error()
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Reason)
}

func (e *OpError) Unwrap() error { return e.Status }

// NewOpError builds an *OpError wrapping status with a formatted reason.
func NewOpError(status Status, format string, args ...any) *OpError {
	return &OpError{Status: status, Reason: fmt.Sprintf(format, args...)}
}
