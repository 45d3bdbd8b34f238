// Package cutter implements the four rotationally-symmetric cutter shapes
// (cylindrical, ball, toroidal/"bull", conical) and the drop-cutter /
// push-cutter contact primitives defined against a single triangle
// (spec.md §3, §4.1).
package cutter

import (
	"fmt"
	"math"

	"github.com/dropcutter/camkernel/internal/geo"
)

// Kind tags which of the four cutter shapes a Cutter is.
type Kind int

const (
	Cylindrical Kind = iota
	Ball
	Bull
	Cone
)

func (k Kind) String() string {
	switch k {
	case Cylindrical:
		return "Cylindrical"
	case Ball:
		return "Ball"
	case Bull:
		return "Bull"
	case Cone:
		return "Cone"
	default:
		return "Unknown"
	}
}

// Cutter is a tagged-variant record of the four permissible cutter shapes
// (spec.md §3). Only the fields relevant to Kind are meaningful:
//
//	Cylindrical: R, L
//	Ball:        R, L
//	Bull:        R, R2, L
//	Cone:        R, Theta, L
type Cutter struct {
	Kind  Kind
	R     float64 // radius (outer radius for Bull, bottom radius for Cone)
	R2    float64 // corner radius, Bull only; 0 < R2 < R
	L     float64 // shaft length
	Theta float64 // half-angle in (0, pi/2), Cone only
}

// New validates the §3 invariants and returns a Cutter, or a descriptive
// error wrapping ErrDegenerateCutter.
func New(kind Kind, r, r2, length, theta float64) (Cutter, error) {
	c := Cutter{Kind: kind, R: r, R2: r2, L: length, Theta: theta}
	if err := c.validate(); err != nil {
		return Cutter{}, err
	}
	return c, nil
}

// NewCylindrical builds a cylindrical (flat end mill) cutter.
func NewCylindrical(radius, length float64) (Cutter, error) {
	return New(Cylindrical, radius, 0, length, 0)
}

// NewBall builds a ball-nose cutter.
func NewBall(radius, length float64) (Cutter, error) {
	return New(Ball, radius, 0, length, 0)
}

// NewBull builds a toroidal ("bull nose") cutter with corner radius r2.
func NewBull(radius, cornerRadius, length float64) (Cutter, error) {
	return New(Bull, radius, cornerRadius, length, 0)
}

// NewCone builds a conical cutter with bottom radius r and half-angle theta.
func NewCone(radius, theta, length float64) (Cutter, error) {
	return New(Cone, radius, 0, length, theta)
}

func (c Cutter) validate() error {
	if c.R <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrDegenerateCutter, c.R)
	}
	if c.L < c.R {
		return fmt.Errorf("%w: shaft length %g must be >= radius %g", ErrDegenerateCutter, c.L, c.R)
	}
	switch c.Kind {
	case Bull:
		if !(c.R2 > 0 && c.R2 < c.R) {
			return fmt.Errorf("%w: bull corner radius %g must satisfy 0 < r2 < r (%g)", ErrDegenerateCutter, c.R2, c.R)
		}
	case Cone:
		if !(c.Theta > 0 && c.Theta < math.Pi/2) {
			return fmt.Errorf("%w: cone half-angle %g must be in (0, pi/2)", ErrDegenerateCutter, c.Theta)
		}
	case Cylindrical, Ball:
		// no extra invariant
	default:
		return fmt.Errorf("%w: unknown cutter kind %v", ErrDegenerateCutter, c.Kind)
	}
	return nil
}

// heightAt returns h(d): the vertical offset above a contacted feature's
// z-coordinate at horizontal distance d (0<=d<=R) from the cutter axis,
// per the table in spec.md §4.1. Returns (0, false) for d outside [0,R].
func (c Cutter) heightAt(d float64) (float64, bool) {
	if d < -geo.Epsilon || d > c.R+geo.Epsilon {
		return 0, false
	}
	d = clamp(d, 0, c.R)
	switch c.Kind {
	case Cylindrical:
		return 0, true
	case Ball:
		return c.R - math.Sqrt(math.Max(0, c.R*c.R-d*d)), true
	case Bull:
		flat := c.R - c.R2
		if d <= flat {
			return 0, true
		}
		dd := d - flat
		return c.R2 - math.Sqrt(math.Max(0, c.R2*c.R2-dd*dd)), true
	case Cone:
		return d / math.Tan(c.Theta), true
	default:
		return 0, false
	}
}

// maxHeight returns h(R), the height of the cutter's active profile at its
// outer radius (the top of the curved/sloped region, where the vertical
// shaft begins).
func (c Cutter) maxHeight() float64 {
	h, _ := c.heightAt(c.R)
	return h
}

// invHeight returns d such that heightAt(d) == delta, clamped to [0,R], for
// delta>=0. Used to turn a push-cutter height budget into a horizontal
// reach (spec.md §4.1 push-cutter dual).
func (c Cutter) invHeight(delta float64) (float64, bool) {
	if delta < -geo.Epsilon {
		return 0, false
	}
	delta = math.Max(0, delta)
	switch c.Kind {
	case Cylindrical:
		return c.R, true
	case Ball:
		if delta >= c.R {
			return c.R, true
		}
		return math.Sqrt(math.Max(0, c.R*c.R-(c.R-delta)*(c.R-delta))), true
	case Bull:
		flat := c.R - c.R2
		if delta <= 0 {
			return flat, true
		}
		if delta >= c.R2 {
			return c.R, true
		}
		return flat + math.Sqrt(math.Max(0, c.R2*c.R2-(c.R2-delta)*(c.R2-delta))), true
	case Cone:
		d := delta * math.Tan(c.Theta)
		if d >= c.R {
			return c.R, true
		}
		return d, true
	default:
		return 0, false
	}
}

// facetOffset returns the additional height above a facet's plane-z that
// the cutter's reference point must sit at, given the facet's unit normal
// z-component nz (spec.md §4.1 facet contact table). Contact depends only
// on the facet's tilt, not on which way its normal happens to point, so nz
// is taken by magnitude; |nz| must be > Epsilon (near-vertical facets are
// skipped by the caller).
func (c Cutter) facetOffset(nz float64) float64 {
	nz = math.Abs(nz)
	switch c.Kind {
	case Cylindrical:
		return 0
	case Ball:
		return c.R * (1 - nz)
	case Bull:
		return c.R2 * (1 - nz)
	case Cone:
		// Grounded on original_source/refactor/src/cutter/cone_cutter.hpp's
		// checkFacet (an explicitly-approximate treatment in the teacher
		// source itself); see DESIGN.md.
		sinTilt := math.Sqrt(math.Max(0, 1-nz*nz))
		return c.R * sinTilt / (nz * math.Tan(c.Theta))
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
