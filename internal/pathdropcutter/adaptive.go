package pathdropcutter

import (
	"math"

	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/geo"
)

// sample is one arc-length position and its dropped CL-point, used while
// building the adaptive sample set.
type sample struct {
	s  float64
	cl geo.CLPoint
}

// AdaptiveSample refines the sampling step recursively: it starts from the
// path's two endpoints and bisects any segment whose midpoint's drop-cutter
// z deviates from the straight-line interpolation of its neighbours by
// more than Config.ZTolerance, down to a floor of Config.MinSampling
// arc-length (spec.md §4.6 adaptive variant).
func (p *PathDropCutter) AdaptiveSample(path geo.Path) ([]geo.CLPoint, error) {
	if path.Empty() {
		return nil, config.NewOpError(config.StatusEmptyPath, "path has no spans")
	}
	total := path.Length()
	if total < geo.Epsilon {
		pt := path.PointAtArcLength(0)
		return []geo.CLPoint{p.dropAt(pt.X, pt.Y)}, nil
	}

	lo := p.sampleAt(path, 0)
	hi := p.sampleAt(path, total)
	mid := []sample{}
	p.subdivide(path, lo, hi, &mid)

	out := make([]geo.CLPoint, 0, len(mid)+2)
	out = append(out, lo.cl)
	for _, s := range mid {
		out = append(out, s.cl)
	}
	out = append(out, hi.cl)
	return out, nil
}

func (p *PathDropCutter) sampleAt(path geo.Path, s float64) sample {
	pt := path.PointAtArcLength(s)
	return sample{s: s, cl: p.dropAt(pt.X, pt.Y)}
}

// subdivide appends samples strictly between lo and hi, in increasing s
// order, bisecting wherever the midpoint's z is not already well predicted
// by linear interpolation between its neighbours, or wherever lo and hi
// themselves disagree on which feature they contact (spec.md §4.6: a
// z-difference over tolerance is one trigger, a CC-type disagreement
// between consecutive CL-points is the other).
func (p *PathDropCutter) subdivide(path geo.Path, lo, hi sample, out *[]sample) {
	if hi.s-lo.s <= p.Config.MinSampling {
		return
	}
	loInf := math.IsInf(lo.cl.Z, -1)
	hiInf := math.IsInf(hi.cl.Z, -1)
	if loInf && hiInf {
		return // no contact on either side; nothing to refine toward
	}

	typeDisagree := lo.cl.CC.Type != hi.cl.CC.Type
	if !typeDisagree && !loInf && !hiInf {
		mid := p.sampleAt(path, (lo.s+hi.s)/2)
		linearZ := lo.cl.Z + (hi.cl.Z-lo.cl.Z)*(mid.s-lo.s)/(hi.s-lo.s)
		if math.Abs(mid.cl.Z-linearZ) <= p.Config.ZTolerance {
			return
		}
		p.subdivide(path, lo, mid, out)
		*out = append(*out, mid)
		p.subdivide(path, mid, hi, out)
		return
	}
	if !typeDisagree {
		return // one side has no contact but types already agree; nothing to refine toward
	}
	mid := p.sampleAt(path, (lo.s+hi.s)/2)
	p.subdivide(path, lo, mid, out)
	*out = append(*out, mid)
	p.subdivide(path, mid, hi, out)
}
