package cutter

import (
	"fmt"
	"math"

	"github.com/dropcutter/camkernel/internal/config"
)

// FromSpec builds a Cutter from its JSON-serialisable description,
// resolving the kind tag and validating the §3 invariants at construction
// rather than deferring the check to first use (grounded on the teacher's
// CutSettings-to-runtime-struct resolution, generalised here into a small
// factory indexed by cutter kind).
func FromSpec(spec config.CutterSpec) (Cutter, error) {
	switch spec.Kind {
	case "cylindrical":
		return NewCylindrical(spec.Radius, spec.Length)
	case "ball":
		return NewBall(spec.Radius, spec.Length)
	case "bull":
		return NewBull(spec.Radius, spec.Radius2, spec.Length)
	case "cone":
		return NewCone(spec.Radius, spec.ThetaDeg*math.Pi/180, spec.Length)
	default:
		return Cutter{}, fmt.Errorf("%w: unknown cutter kind %q", ErrDegenerateCutter, spec.Kind)
	}
}

// Spec converts c back into its serialisable form.
func (c Cutter) Spec() config.CutterSpec {
	s := config.CutterSpec{Radius: c.R, Length: c.L}
	switch c.Kind {
	case Cylindrical:
		s.Kind = "cylindrical"
	case Ball:
		s.Kind = "ball"
	case Bull:
		s.Kind = "bull"
		s.Radius2 = c.R2
	case Cone:
		s.Kind = "cone"
		s.ThetaDeg = c.Theta * 180 / math.Pi
	}
	return s
}
