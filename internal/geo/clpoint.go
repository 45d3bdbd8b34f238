package geo

import "math"

// CLPoint is a cutter-location point: the cutter's reference point plus the
// contact descriptor recorded the last time it was raised (spec.md §3).
// A CLPoint is created by the caller with Z set to a lower bound (often
// -Inf) and is only ever raised, never lowered, by the core.
type CLPoint struct {
	X, Y, Z float64
	CC      CCPoint
}

// NewCLPoint returns a CL-point with an unbounded (-Inf) lower z, the usual
// starting state before a drop-cutter pass.
func NewCLPoint(x, y float64) CLPoint {
	return NewCLPointAt(x, y, math.Inf(-1))
}

// NewCLPointAt returns a CL-point with caller-supplied lower bound z, used
// where the caller already knows a floor the cutter may never sink below
// (spec.md §4.3).
func NewCLPointAt(x, y, z float64) CLPoint {
	return CLPoint{X: x, Y: y, Z: z, CC: CCPoint{Type: CCTypeNone}}
}

// Point returns the CL-point's position as a geo.Point.
func (c CLPoint) Point() Point { return Point{c.X, c.Y, c.Z} }

// Raise updates c in place to z/cc if z is higher than c's current z,
// reporting whether an update occurred. This is the single choke point
// every contact routine uses so "never decreased" (spec.md §3) holds
// everywhere.
func (c *CLPoint) Raise(z float64, cc CCPoint) bool {
	if z > c.Z {
		c.Z = z
		c.CC = cc
		return true
	}
	return false
}
