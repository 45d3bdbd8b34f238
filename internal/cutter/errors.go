package cutter

import "github.com/dropcutter/camkernel/internal/config"

// ErrDegenerateCutter is wrapped by every cutter construction failure
// (spec.md §7 "degenerate_cutter"). It is config.StatusDegenerateCutter, so
// errors.Is matches either name.
var ErrDegenerateCutter error = config.StatusDegenerateCutter
