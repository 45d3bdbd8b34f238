package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriangleRejectsDegenerate(t *testing.T) {
	_, err := NewTriangle(Point{0, 0, 0}, Point{1, 0, 0}, Point{2, 0, 0})
	require.ErrorIs(t, err, ErrDegenerateTriangle)
}

func TestNewTriangleNormal(t *testing.T) {
	tri, err := NewTriangle(Point{0, 0, 0}, Point{10, 0, 0}, Point{0, 10, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, tri.Normal.X, Epsilon)
	assert.InDelta(t, 0.0, tri.Normal.Y, Epsilon)
	assert.InDelta(t, 1.0, tri.Normal.Z, Epsilon)
}

func TestTriangleContainsXY(t *testing.T) {
	tri, err := NewTriangle(Point{0, 0, 0}, Point{10, 0, 0}, Point{0, 10, 0})
	require.NoError(t, err)
	assert.True(t, tri.ContainsXY(Point{2, 2, 0}))
	assert.False(t, tri.ContainsXY(Point{9, 9, 0}))
}

func TestBBoxOverlapsAxisSelectable(t *testing.T) {
	a := BBox{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1, MinZ: 5, MaxZ: 6}
	b := BBox{MinX: 0.5, MaxX: 1.5, MinY: 0.5, MaxY: 1.5, MinZ: 0, MaxZ: 1}
	assert.True(t, a.Overlaps(b, AxisXY))
	assert.False(t, a.Overlaps(b, AxisXYZ))
}

func TestCLPointRaiseNeverDecreases(t *testing.T) {
	cl := NewCLPoint(1, 1)
	assert.True(t, cl.Raise(2.0, CCPoint{Type: CCTypeFacet}))
	assert.False(t, cl.Raise(1.0, CCPoint{Type: CCTypeVertex}))
	assert.Equal(t, 2.0, cl.Z)
	assert.Equal(t, CCTypeFacet, cl.CC.Type)
}

func TestFiberAddIntervalMergesOverlapping(t *testing.T) {
	f := NewFiber(Point{0, 0, 0}, Point{10, 0, 0})
	f.AddInterval(Interval{Lower: 0.1, Upper: 0.4, LowerCC: CCPoint{Type: CCTypeVertex}, UpperCC: CCPoint{Type: CCTypeEdge}})
	f.AddInterval(Interval{Lower: 0.3, Upper: 0.6, LowerCC: CCPoint{Type: CCTypeFacet}, UpperCC: CCPoint{Type: CCTypeVertex}})
	require.Len(t, f.Intervals, 1)
	iv := f.Intervals[0]
	assert.InDelta(t, 0.1, iv.Lower, Epsilon)
	assert.InDelta(t, 0.6, iv.Upper, Epsilon)
	// the lower bound 0.1 comes from the first interval alone, so its VERTEX
	// tag survives; FACET>EDGE>VERTEX priority only breaks ties at equal bounds.
	assert.Equal(t, CCTypeVertex, iv.LowerCC.Type)
}

func TestFiberAddIntervalKeepsDisjointSorted(t *testing.T) {
	f := NewFiber(Point{0, 0, 0}, Point{10, 0, 0})
	f.AddInterval(Interval{Lower: 0.6, Upper: 0.8})
	f.AddInterval(Interval{Lower: 0.1, Upper: 0.2})
	require.Len(t, f.Intervals, 2)
	assert.InDelta(t, 0.1, f.Intervals[0].Lower, Epsilon)
	assert.InDelta(t, 0.6, f.Intervals[1].Lower, Epsilon)
}

func TestFiberAddIntervalDropsZeroLength(t *testing.T) {
	f := NewFiber(Point{0, 0, 0}, Point{10, 0, 0})
	f.AddInterval(Interval{Lower: 0.5, Upper: 0.5})
	assert.Empty(t, f.Intervals)
}

func TestPathSampleArcLengthIncludesEndpoint(t *testing.T) {
	line := Line{P1: Point{0, 0, 0}, P2: Point{10, 0, 0}}
	p, err := NewPath([]Span{line})
	require.NoError(t, err)
	samples := p.SampleArcLength(1.0)
	require.Len(t, samples, 11)
	assert.InDelta(t, 10.0, samples[len(samples)-1], Epsilon)
}

func TestNewPathRejectsDiscontinuity(t *testing.T) {
	l1 := Line{P1: Point{0, 0, 0}, P2: Point{10, 0, 0}}
	l2 := Line{P1: Point{20, 0, 0}, P2: Point{30, 0, 0}}
	_, err := NewPath([]Span{l1, l2})
	require.ErrorIs(t, err, ErrSpanDiscontinuity)
}

func TestArcLength(t *testing.T) {
	a := Arc{Center: Point{0, 0, 0}, Radius: 10, StartAngle: 0, EndAngle: math.Pi / 2, Normal: Vector3{0, 0, 1}}
	assert.InDelta(t, 10*math.Pi/2, a.Length(), 1e-9)
	start := a.StartPoint()
	assert.InDelta(t, 10, start.X, 1e-9)
	assert.InDelta(t, 0, start.Y, 1e-9)
	end := a.EndPoint()
	assert.InDelta(t, 0, end.X, 1e-9)
	assert.InDelta(t, 10, end.Y, 1e-9)
}
