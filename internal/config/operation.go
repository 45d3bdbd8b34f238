package config

// CutterSpec is the JSON-serialisable description of a cutter, the
// on-the-wire counterpart of cutter.Cutter (kept separate so the
// internal/cutter package has no serialisation concerns of its own,
// mirroring the teacher's internal/model.CutSettings/AppConfig split
// between persisted configuration and runtime state).
type CutterSpec struct {
	Kind   string  `json:"kind"` // "cylindrical", "ball", "bull", "cone"
	Radius float64 `json:"radius"`
	Radius2 float64 `json:"radius2,omitempty"` // bull corner radius
	Length float64 `json:"length"`
	ThetaDeg float64 `json:"theta_deg,omitempty"` // cone half-angle, degrees
}

// OperationConfig holds the tunables shared by the batch operations:
// spatial-index bucket size, worker-pool grain size and worker count, and
// the sampling tolerances used by the path and waterline operations
// (spec.md §4.2, §4.5, §4.9, §6).
type OperationConfig struct {
	// BucketSize is the maximum number of triangles in a spatial-index leaf.
	BucketSize int `json:"bucket_size"`
	// Grain is the chunk size handed to a single worker goroutine (the
	// last chunk may be smaller).
	Grain int `json:"grain"`
	// Workers caps the number of worker goroutines; 0 means GOMAXPROCS.
	Workers int `json:"workers"`
	// MinSampling is the smallest arc-length step the adaptive path
	// drop-cutter operation is permitted to subdivide down to.
	MinSampling float64 `json:"min_sampling"`
	// ZTolerance is the adaptive path drop-cutter's z-error budget: the
	// recursive midpoint subdivision stops once the midpoint's drop-cutter
	// z is within ZTolerance of the linear interpolation between its
	// neighbours.
	ZTolerance float64 `json:"z_tolerance"`
}

// DefaultOperationConfig returns an OperationConfig populated with values
// that are safe for moderate mesh sizes (spec.md §6 "typical defaults").
func DefaultOperationConfig() OperationConfig {
	return OperationConfig{
		BucketSize:  8,
		Grain:       64,
		Workers:     0,
		MinSampling: 0.01,
		ZTolerance:  1e-4,
	}
}
