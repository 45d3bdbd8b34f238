package report

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/dropcutter/camkernel/internal/geo"
	"github.com/dropcutter/camkernel/internal/waterline"
)

// levelColor is an RGB color for one z-level's plotted loops.
type levelColor struct{ R, G, B int }

// levelColors mirrors the teacher's export.partColors cycling scheme,
// reused here for z-levels instead of placed parts.
var levelColors = []levelColor{
	{R: 76, G: 175, B: 80},
	{R: 33, G: 150, B: 243},
	{R: 255, G: 152, B: 0},
	{R: 156, G: 39, B: 176},
	{R: 0, G: 188, B: 212},
	{R: 244, G: 67, B: 54},
}

// Page layout constants (A4 landscape in mm), matching the teacher's
// internal/export/pdf.go margins.
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// RenderWaterlinePDF draws every z-level's extracted loops on a single page,
// scaled to fit, for offline debugging of a waterline run (spec.md §4.12).
// This is a development aid, not a reporting feature aimed at end users.
func RenderWaterlinePDF(path string, results []waterline.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("report: no waterline results to render")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Waterline Contour Debug Plot", "", 0, "L", false, 0, "")

	minX, minY, maxX, maxY := boundsOf(results)
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	spanX, spanY := maxX-minX, maxY-minY
	if spanX < 1e-6 {
		spanX = 1
	}
	if spanY < 1e-6 {
		spanY = 1
	}
	scale := math.Min(drawWidth/spanX, drawHeight/spanY)

	offsetX := marginLeft + (drawWidth-spanX*scale)/2
	offsetY := drawAreaTop

	toPage := func(x, y float64) (float64, float64) {
		return offsetX + (x-minX)*scale, offsetY + (maxY-y)*scale
	}

	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	pdf.Rect(offsetX, offsetY, spanX*scale, spanY*scale, "D")

	for i, r := range results {
		col := levelColors[i%len(levelColors)]
		pdf.SetDrawColor(col.R, col.G, col.B)
		pdf.SetLineWidth(0.3)
		for _, loop := range r.Loops {
			drawLoop(pdf, loop.Points, toPage)
		}
	}

	drawLegend(pdf, results, offsetY+spanY*scale+6)

	return pdf.OutputFileAndClose(path)
}

// drawLoop draws straight page-space segments between consecutive loop
// points, closing back to the first point.
func drawLoop(pdf *fpdf.Fpdf, points []geo.Point, toPage func(float64, float64) (float64, float64)) {
	if len(points) < 2 {
		return
	}
	for i := 0; i < len(points); i++ {
		a := points[i]
		b := points[(i+1)%len(points)]
		ax, ay := toPage(a.X, a.Y)
		bx, by := toPage(b.X, b.Y)
		pdf.Line(ax, ay, bx, by)
	}
}

func boundsOf(results []waterline.Result) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, r := range results {
		for _, loop := range r.Loops {
			for _, p := range loop.Points {
				minX = math.Min(minX, p.X)
				maxX = math.Max(maxX, p.X)
				minY = math.Min(minY, p.Y)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}

func drawLegend(pdf *fpdf.Fpdf, results []waterline.Result, y float64) {
	pdf.SetFont("Helvetica", "", 8)
	x := marginLeft
	for i, r := range results {
		col := levelColors[i%len(levelColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(x, y, 3, 3, "F")
		label := fmt.Sprintf("z=%.2f", r.Z)
		pdf.SetXY(x+4, y-1)
		pdf.CellFormat(pdf.GetStringWidth(label)+4, 4, label, "", 0, "L", false, 0, "")
		x += pdf.GetStringWidth(label) + 12
	}
}
