// camdemo exercises the camkernel library end to end against a small
// synthetic pyramid surface: a drop-cutter grid, a waterline slice set, and
// a debug PDF contour plot of the result.
//
// Build:
//
//	go build -o camdemo ./cmd/camdemo
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/cutter"
	"github.com/dropcutter/camkernel/internal/dropcutter"
	"github.com/dropcutter/camkernel/internal/geo"
	"github.com/dropcutter/camkernel/internal/report"
	"github.com/dropcutter/camkernel/internal/waterline"
)

func main() {
	radius := flag.Float64("radius", 2.0, "cutter radius (mm)")
	step := flag.Float64("step", 2.0, "sample step (mm)")
	pdfOut := flag.String("pdf", "", "optional path to write a waterline debug PDF")
	flag.Parse()

	surf := pyramidSurface()
	c, err := cutter.NewBall(*radius, 20)
	if err != nil {
		log.Fatalf("camdemo: %v", err)
	}
	cfg := config.DefaultOperationConfig()

	bdc, err := dropcutter.New(c, surf, cfg)
	if err != nil {
		log.Fatalf("camdemo: %v", err)
	}
	var points []geo.CLPoint
	for x := -20.0; x <= 20.0; x += *step {
		for y := -20.0; y <= 20.0; y += *step {
			points = append(points, geo.NewCLPoint(x, y))
		}
	}
	cls, err := bdc.Run(points)
	if err != nil {
		log.Fatalf("camdemo: %v", err)
	}
	fmt.Printf("drop-cutter: %d points sampled\n", len(cls))

	wl, err := waterline.New(c, surf, *step, cfg)
	if err != nil {
		log.Fatalf("camdemo: %v", err)
	}
	results, err := wl.Run([]float64{5, 10, 15})
	if err != nil {
		log.Fatalf("camdemo: %v", err)
	}
	summary := report.Summarize(wl)
	fmt.Printf("waterline run %s: %d slices, %d loops total, anomalies=%d\n",
		summary.RunID, len(results), totalLoops(results), summary.Anomalies)

	if *pdfOut != "" {
		if err := report.RenderWaterlinePDF(*pdfOut, results); err != nil {
			log.Fatalf("camdemo: %v", err)
		}
		fmt.Printf("wrote %s\n", *pdfOut)
	}

	os.Exit(0)
}

func totalLoops(results []waterline.Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Loops)
	}
	return n
}

// pyramidSurface builds a small four-sided pyramid, used only to give the
// demo something to cut.
func pyramidSurface() geo.Surface {
	apex := geo.Point{X: 0, Y: 0, Z: 20}
	base := []geo.Point{{X: -20, Y: -20, Z: 0}, {X: 20, Y: -20, Z: 0}, {X: 20, Y: 20, Z: 0}, {X: -20, Y: 20, Z: 0}}
	var tris []geo.Triangle
	for i := 0; i < 4; i++ {
		tri, err := geo.NewTriangle(base[i], base[(i+1)%4], apex)
		if err != nil {
			log.Fatalf("camdemo: %v", err)
		}
		tris = append(tris, tri)
	}
	return geo.NewSurface(tris)
}
