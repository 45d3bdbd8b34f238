// Package pushcutter implements the push-cutter batch operation: sweeping
// a cutter horizontally along a set of fibers at fixed heights, recording
// the contact intervals on each (spec.md §4.4, §4.5).
package pushcutter

import (
	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/cutter"
	"github.com/dropcutter/camkernel/internal/geo"
	"github.com/dropcutter/camkernel/internal/parallel"
	"github.com/dropcutter/camkernel/internal/spatial"
)

// BatchPushCutter sweeps a single cutter along many fibers against one
// surface, reusing one spatial index across the whole batch.
type BatchPushCutter struct {
	Cutter  cutter.Cutter
	Surface geo.Surface
	Config  config.OperationConfig

	index     spatial.Index
	Counter   parallel.CallCounter
	anomalies parallel.CallCounter
}

// AnomalyCount returns the number of edge-feature pushes resolved through a
// numeric root window wide enough to risk missing a contact (spec.md
// §4.12); see cutter.EdgeRootWindowAnomaly.
func (b *BatchPushCutter) AnomalyCount() int64 { return b.anomalies.Load() }

// New builds a BatchPushCutter, indexing surf once up front using the full
// 3D bounding boxes (a fiber's candidate triangles can lie off to any side
// depending on its height), per spec.md §9's narrow index trait.
func New(cut cutter.Cutter, surf geo.Surface, cfg config.OperationConfig) (*BatchPushCutter, error) {
	if surf.Empty() {
		return nil, config.NewOpError(config.StatusEmptySurface, "surface has no triangles")
	}
	return &BatchPushCutter{
		Cutter:  cut,
		Surface: surf,
		Config:  cfg,
		index:   spatial.Build(surf.Triangles, geo.AxisXYZ, cfg.BucketSize),
	}, nil
}

// Run sweeps the cutter along every fiber and returns a copy of each fiber
// with its Intervals populated, in the same order as the input
// (spec.md §4.5).
func (b *BatchPushCutter) Run(fibers []geo.Fiber) ([]geo.Fiber, error) {
	if len(fibers) == 0 {
		return nil, nil
	}
	out := make([]geo.Fiber, len(fibers))
	r := b.Cutter.R

	parallel.ForEach(len(fibers), b.Config.Grain, b.Config.Workers, func(i int) {
		f := fibers[i]
		box := queryBox(f, r)
		hits := b.index.Query(box)
		b.Counter.Add(int64(len(hits)))
		for _, h := range hits {
			tri := b.Surface.Triangles[h]
			if b.Cutter.EdgeRootWindowAnomaly(f, tri) {
				b.anomalies.Add(1)
			}
			for _, iv := range b.Cutter.PushCutter(f, tri) {
				f.AddInterval(iv)
			}
		}
		out[i] = f
	})
	return out, nil
}

// queryBox bounds the candidate triangles for fiber: the fiber's own XY
// extent inflated by the cutter radius in the perpendicular direction, and
// the full z-range the cutter could reach from this fiber's height.
func queryBox(f geo.Fiber, r float64) geo.BBox {
	minX, maxX := f.P1.X, f.P2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := f.P1.Y, f.P2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	z := f.Z()
	box := geo.BBox{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY, MinZ: z - r, MaxZ: z + r}
	switch f.Direction {
	case geo.FiberX:
		box.MinY -= r
		box.MaxY += r
	case geo.FiberY:
		box.MinX -= r
		box.MaxX += r
	}
	return box
}
