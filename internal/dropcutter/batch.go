// Package dropcutter implements the drop-cutter batch operation: lowering
// a cutter vertically onto a surface at a set of (x,y) locations
// (spec.md §4.3, §4.5).
package dropcutter

import (
	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/cutter"
	"github.com/dropcutter/camkernel/internal/geo"
	"github.com/dropcutter/camkernel/internal/parallel"
	"github.com/dropcutter/camkernel/internal/spatial"
)

// BatchDropCutter drops a single cutter onto a surface at many (x,y)
// locations, reusing one spatial index across the whole batch (spec.md
// §4.5 "batch operations own a single spatial index, built once").
type BatchDropCutter struct {
	Cutter  cutter.Cutter
	Surface geo.Surface
	Config  config.OperationConfig

	index   spatial.Index
	Counter parallel.CallCounter
}

// New builds a BatchDropCutter, indexing surf once up front.
func New(cut cutter.Cutter, surf geo.Surface, cfg config.OperationConfig) (*BatchDropCutter, error) {
	if surf.Empty() {
		return nil, config.NewOpError(config.StatusEmptySurface, "surface has no triangles")
	}
	return &BatchDropCutter{
		Cutter:  cut,
		Surface: surf,
		Config:  cfg,
		index:   spatial.Build(surf.Triangles, geo.AxisXY, cfg.BucketSize),
	}, nil
}

// AnomalyCount always reports zero: drop-cutter's only error condition (a
// degenerate cutter) is already rejected at construction time by
// cutter.New, and every per-facet degeneracy dropCutter encounters (a
// near-vertical facet, a foot falling outside an edge) is a legitimate
// CCTYPE_NONE outcome, not a CCTYPE_ERROR one. The method exists for
// interface symmetry with BatchPushCutter and Waterline (spec.md §4.12),
// whose numeric root search has a real, non-zero anomaly rate.
func (b *BatchDropCutter) AnomalyCount() int64 { return 0 }

// Run drops the cutter at every point in points and returns one CLPoint per
// input point, in the same order as points (spec.md §4.5: "output ordering
// mirrors input ordering regardless of parallelism"). Each input CLPoint's Z
// is its lower bound: callers with a known floor pass geo.NewCLPointAt(x, y,
// floor); callers with none pass geo.NewCLPoint(x, y), whose -Inf floor never
// blocks a contact from registering.
func (b *BatchDropCutter) Run(points []geo.CLPoint) ([]geo.CLPoint, error) {
	if len(points) == 0 {
		return nil, nil
	}
	out := make([]geo.CLPoint, len(points))
	r := b.Cutter.R

	parallel.ForEach(len(points), b.Config.Grain, b.Config.Workers, func(i int) {
		cl := points[i]
		box := geo.BBox{MinX: cl.X - r, MaxX: cl.X + r, MinY: cl.Y - r, MaxY: cl.Y + r, MinZ: b.Surface.BBox.MinZ, MaxZ: b.Surface.BBox.MaxZ}
		hits := b.index.Query(box)
		b.Counter.Add(int64(len(hits)))
		for _, h := range hits {
			b.Cutter.DropCutter(&cl, b.Surface.Triangles[h])
		}
		out[i] = cl
	})
	return out, nil
}
