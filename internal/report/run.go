// Package report provides the debugging and correlation aids layered on top
// of the core batch operations: a short opaque run ID for correlating a
// retried run's anomaly count with its predecessor in logs, and a debug PDF
// contour plot of a waterline result (spec.md §4.12).
package report

import "github.com/google/uuid"

// NewRunID returns a short opaque identifier for one operation run,
// truncated to 8 characters the way the teacher's model.NewPart truncates
// its UUID.
func NewRunID() string {
	return uuid.New().String()[:8]
}

// AnomalyCounter is satisfied by every batch operation type that tracks a
// numeric-method anomaly count (spec.md §4.12).
type AnomalyCounter interface {
	AnomalyCount() int64
}

// Summary pairs a run's ID with its anomaly count, for logging or
// correlating retried runs.
type Summary struct {
	RunID     string
	Anomalies int64
}

// Summarize builds a Summary for op, minting a fresh run ID.
func Summarize(op AnomalyCounter) Summary {
	return Summary{RunID: NewRunID(), Anomalies: op.AnomalyCount()}
}
