// Package gcodewriter is the thin G-code serializer consuming the core's
// Plan (§1, §6). Its lexical details are outside the core's contract, but
// it recovers the per-move feed rate and running-extrusion-length feature
// that original_source/gcode.py has and spec.md's distillation dropped
// (P6: extrusion length along any path is non-decreasing).
package gcodewriter

import (
	"fmt"
	"io"
	"math"

	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/geom"
	"github.com/patrice-boulanger/abbot/internal/plan"
)

// Writer emits G-code for a Plan.
type Writer struct {
	cfg config.Configuration

	spTravel, spPrint, spInfill float64 // mm/min
	nozzleArea, filamentArea    float64 // mm^2
}

// NewWriter builds a Writer from the configuration that produced the plan.
func NewWriter(cfg config.Configuration) *Writer {
	return &Writer{
		cfg:          cfg,
		spTravel:     cfg.Speed.Travel * 60,
		spPrint:      cfg.Speed.Print * 60,
		spInfill:     cfg.Speed.Infill * 60,
		nozzleArea:   cfg.Extruder.NozzleDiameter * cfg.Extruder.NozzleDiameter * math.Pi,
		filamentArea: cfg.Extruder.FilamentDiameter * cfg.Extruder.FilamentDiameter * math.Pi,
	}
}

// extrusionLength returns the filament length needed to print distance mm
// of nozzle-diameter bead, by cross-sectional area ratio.
func (w *Writer) extrusionLength(x0, y0, x1, y1 float64) float64 {
	dx, dy := x0-x1, y0-y1
	distance := math.Sqrt(dx*dx + dy*dy)
	return (w.nozzleArea * distance) / w.filamentArea
}

// Write serializes p to w, layer by layer, perimeters then infill. The
// running extrusion length e is carried across the whole plan and is
// non-decreasing throughout (P6).
func (w *Writer) Write(out io.Writer, p *plan.Plan) error {
	fmt.Fprintf(out, "; run %s\n", p.RunID)

	e := 0.0
	for _, layer := range p.Layers {
		fmt.Fprintf(out, "; layer #%d\n", layer.Index)
		z := layer.Z + w.cfg.Quality

		for _, region := range layer.Regions {
			fmt.Fprintf(out, "; perimeter %s\n", region.Mesh)
			for _, perim := range region.Perimeters {
				var err error
				e, err = w.writePath(out, perim.Points, z, e)
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "; infill %s\n", region.Mesh)
			for _, s := range region.Infill {
				fmt.Fprintf(out, "G0 F%.0f X%.5f Y%.5f\n", w.spTravel, s.X0, s.Y0)
				e += w.extrusionLength(s.X0, s.Y0, s.X1, s.Y1)
				fmt.Fprintf(out, "G1 F%.0f X%.5f Y%.5f E%.5f\n", w.spInfill, s.X1, s.Y1, e)
			}
		}
	}

	return nil
}

// writePath emits one perimeter path: a travel move to the first point,
// then printed moves through the rest, returning the updated running
// extrusion length.
func (w *Writer) writePath(out io.Writer, pts []geom.Point, z, e float64) (float64, error) {
	if len(pts) < 2 {
		return e, fmt.Errorf("gcodewriter: path has fewer than two points")
	}

	fmt.Fprintf(out, "G0 F%.0f X%.5f Y%.5f Z%.5f\n", w.spTravel, pts[0].X, pts[0].Y, z)

	e += w.extrusionLength(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
	fmt.Fprintf(out, "G1 F%.0f X%.5f Y%.5f E%.5f\n", w.spPrint, pts[1].X, pts[1].Y, e)

	prev := pts[1]
	for _, p := range pts[2:] {
		e += w.extrusionLength(prev.X, prev.Y, p.X, p.Y)
		fmt.Fprintf(out, "G1 X%.5f Y%.5f E%.5f\n", p.X, p.Y, e)
		prev = p
	}

	return e, nil
}
