// Package pathdropcutter drops a cutter along a guide path in path order
// (not as an unordered batch), either at a uniform arc-length step or
// adaptively, refining only where the surface's curvature demands it
// (spec.md §4.6).
package pathdropcutter

import (
	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/cutter"
	"github.com/dropcutter/camkernel/internal/geo"
	"github.com/dropcutter/camkernel/internal/spatial"
)

// PathDropCutter drops a single cutter along a path against one surface.
type PathDropCutter struct {
	Cutter  cutter.Cutter
	Surface geo.Surface
	Config  config.OperationConfig

	index spatial.Index
}

// New builds a PathDropCutter, indexing surf once up front.
func New(cut cutter.Cutter, surf geo.Surface, cfg config.OperationConfig) (*PathDropCutter, error) {
	if surf.Empty() {
		return nil, config.NewOpError(config.StatusEmptySurface, "surface has no triangles")
	}
	return &PathDropCutter{
		Cutter:  cut,
		Surface: surf,
		Config:  cfg,
		index:   spatial.Build(surf.Triangles, geo.AxisXY, cfg.BucketSize),
	}, nil
}

// dropAt runs the drop-cutter primitive at world (x,y) against every
// candidate triangle and returns the resulting CLPoint.
func (p *PathDropCutter) dropAt(x, y float64) geo.CLPoint {
	cl := geo.NewCLPoint(x, y)
	r := p.Cutter.R
	box := geo.BBox{MinX: x - r, MaxX: x + r, MinY: y - r, MaxY: y + r, MinZ: p.Surface.BBox.MinZ, MaxZ: p.Surface.BBox.MaxZ}
	for _, h := range p.index.Query(box) {
		p.Cutter.DropCutter(&cl, p.Surface.Triangles[h])
	}
	return cl
}

// AnomalyCount always reports zero, for the same reason as
// dropcutter.BatchDropCutter.AnomalyCount: path-drop-cutter never exercises
// the push-cutter's numeric edge root search (spec.md §4.12).
func (p *PathDropCutter) AnomalyCount() int64 { return 0 }

// Sample drops the cutter at uniform arc-length steps along path, in path
// order (spec.md §4.6).
func (p *PathDropCutter) Sample(path geo.Path, step float64) ([]geo.CLPoint, error) {
	if path.Empty() {
		return nil, config.NewOpError(config.StatusEmptyPath, "path has no spans")
	}
	if step <= 0 {
		return nil, config.NewOpError(config.StatusInvalidInput, "sample step must be positive, got %g", step)
	}
	esses := path.SampleArcLength(step)
	out := make([]geo.CLPoint, len(esses))
	for i, s := range esses {
		pt := path.PointAtArcLength(s)
		out[i] = p.dropAt(pt.X, pt.Y)
	}
	return out, nil
}
