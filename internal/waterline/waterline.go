// Package waterline extracts constant-z contours of a surface by sweeping
// a push-cutter grid across an inflated bounding rectangle at each
// requested height and reducing the result to closed loops via a weave
// (spec.md §4.9).
package waterline

import (
	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/cutter"
	"github.com/dropcutter/camkernel/internal/geo"
	"github.com/dropcutter/camkernel/internal/parallel"
	"github.com/dropcutter/camkernel/internal/pushcutter"
	"github.com/dropcutter/camkernel/internal/weave"
)

// Waterline extracts closed contour loops at one or more z-heights.
type Waterline struct {
	Cutter     cutter.Cutter
	Surface    geo.Surface
	Config     config.OperationConfig
	SampleStep float64 // fiber grid spacing in x and y

	push *pushcutter.BatchPushCutter
}

// New builds a Waterline over surf. sampleStep must be > 0.
func New(cut cutter.Cutter, surf geo.Surface, sampleStep float64, cfg config.OperationConfig) (*Waterline, error) {
	if surf.Empty() {
		return nil, config.NewOpError(config.StatusEmptySurface, "surface has no triangles")
	}
	if sampleStep <= 0 {
		return nil, config.NewOpError(config.StatusInvalidInput, "sample step must be positive, got %g", sampleStep)
	}
	bpc, err := pushcutter.New(cut, surf, cfg)
	if err != nil {
		return nil, err
	}
	return &Waterline{Cutter: cut, Surface: surf, Config: cfg, SampleStep: sampleStep, push: bpc}, nil
}

// AnomalyCount returns the number of edge-feature pushes (across every
// z-slice run so far) resolved through a numeric root window wide enough to
// risk missing a contact, delegating to the shared push-cutter batch
// (spec.md §4.12).
func (wl *Waterline) AnomalyCount() int64 { return wl.push.AnomalyCount() }

// Result is one z-height's extracted loops.
type Result struct {
	Z     float64
	Loops []weave.Loop
}

// Run extracts the waterline at every z in zs, preserving input order in
// the output regardless of how the per-z work is scheduled (spec.md §4.5,
// §4.9: "ascending input-order preservation").
func (wl *Waterline) Run(zs []float64) ([]Result, error) {
	if len(zs) == 0 {
		return nil, nil
	}
	out := make([]Result, len(zs))
	workers := wl.Config.Workers
	// Each z is its own chunk (grain 1), so up to `workers` slices run at
	// once; each slice's push-cutter batches are themselves parallel with
	// the same worker setting.
	parallel.ForEach(len(zs), 1, workers, func(i int) {
		out[i] = Result{Z: zs[i], Loops: wl.sliceAt(zs[i])}
	})
	return out, nil
}

func (wl *Waterline) sliceAt(z float64) []weave.Loop {
	r := wl.Cutter.R
	box := wl.Surface.BBox.Inflate(r)
	step := wl.SampleStep

	var rows, cols []geo.Fiber
	for y := box.MinY; y <= box.MaxY+geo.Epsilon; y += step {
		rows = append(rows, geo.NewFiber(geo.Point{X: box.MinX, Y: y, Z: z}, geo.Point{X: box.MaxX, Y: y, Z: z}))
	}
	for x := box.MinX; x <= box.MaxX+geo.Epsilon; x += step {
		cols = append(cols, geo.NewFiber(geo.Point{X: x, Y: box.MinY, Z: z}, geo.Point{X: x, Y: box.MaxY, Z: z}))
	}

	rowResults, _ := wl.push.Run(rows)
	colResults, _ := wl.push.Run(cols)

	w := weave.Build(rowResults, colResults)
	return w.ExtractLoops(step / 100)
}
