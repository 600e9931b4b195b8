// Package infill implements the infill generator (§4.4): for each
// model-region, a zig-zag grid of axis-aligned scan segments filling the
// interior of the region's closed contours. Grounded on the GridPattern /
// XFillLine / YFillLine classes of original_source/fill.py, with the
// symmetric clamp rule spec.md §4.4 adopts to resolve that file's
// asymmetric (and occasionally break-vs-clamp-confused) clip clauses.
package infill

import (
	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/errs"
	"github.com/patrice-boulanger/abbot/internal/geom"
	"github.com/patrice-boulanger/abbot/internal/plan"
)

// Step returns the scan step for a layer: solid-skin layers (the first
// three or the last three of the print) use the nozzle diameter, all other
// layers use 1.0mm.
func Step(cfg config.Configuration, layerIndex, layerCount int) float64 {
	if layerIndex < 3 || layerIndex >= layerCount-3 {
		return cfg.Extruder.NozzleDiameter
	}
	return 1.0
}

// Fill scans the bounding box of contours with axis-aligned lines spaced by
// step, alternating scan axis with layer parity (even layers scan X, odd
// layers scan Y) and zig-zagging intercept order row to row.
func Fill(contours []geom.Polyline, step float64, layerIndex int, meshName string) ([]plan.GridSegment, error) {
	if len(contours) == 0 || step <= 0 {
		return nil, nil
	}

	xmin, ymin, xmax, ymax := contourBBox(contours)

	if layerIndex%2 == 0 {
		return scanX(contours, xmin, ymin, xmax, ymax, step, meshName, layerIndex)
	}
	return scanY(contours, xmin, ymin, xmax, ymax, step, meshName, layerIndex)
}

func contourBBox(contours []geom.Polyline) (xmin, ymin, xmax, ymax float64) {
	first := true
	for _, c := range contours {
		mn, mx := c.BBox()
		if first {
			xmin, ymin, xmax, ymax = mn.X, mn.Y, mx.X, mx.Y
			first = false
			continue
		}
		if mn.X < xmin {
			xmin = mn.X
		}
		if mn.Y < ymin {
			ymin = mn.Y
		}
		if mx.X > xmax {
			xmax = mx.X
		}
		if mx.Y > ymax {
			ymax = mx.Y
		}
	}
	return
}

// contourEdges returns every consecutive pair of pl plus, when pl is not
// already closed (first ≈ last), the implicit closing edge from its last
// point back to its first. Spec §4.4 treats every contour as closed; a
// path reconstructor remnant that never made it back to its start (§4.3
// allows open polylines) would otherwise present an odd number of
// intercepts to a scan line and fail its region (§7's DegenerateLayer),
// the way original_source/fill.py avoids by seeding prev = path[-1].
func contourEdges(pl geom.Polyline) [][2]geom.Point {
	pts := pl.Points
	n := len(pts)
	if n < 2 {
		return nil
	}
	edges := make([][2]geom.Point, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]geom.Point{pts[i], pts[i+1]})
	}
	if !pl.Closed() {
		edges = append(edges, [2]geom.Point{pts[n-1], pts[0]})
	}
	return edges
}

// interceptsAtY returns the x-intercepts, in edge order and unsorted, of
// every edge of every contour against the horizontal scan line y, using the
// half-open crossing rule (min, max] so a shared vertex is never
// double-counted.
func interceptsAtY(contours []geom.Polyline, y float64) []float64 {
	var xs []float64
	for _, c := range contours {
		for _, e := range contourEdges(c) {
			p, q := e[0], e[1]
			lo, hi := p.Y, q.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if y > lo && y <= hi {
				xs = append(xs, geom.Intercept2D(p.X, p.Y, q.X, q.Y, y))
			}
		}
	}
	return xs
}

// interceptsAtX is the Y-axis symmetric counterpart of interceptsAtY.
func interceptsAtX(contours []geom.Polyline, x float64) []float64 {
	var ys []float64
	for _, c := range contours {
		for _, e := range contourEdges(c) {
			p, q := e[0], e[1]
			lo, hi := p.X, q.X
			if lo > hi {
				lo, hi = hi, lo
			}
			if x > lo && x <= hi {
				// Invert X and Y in the intercept formula.
				ys = append(ys, geom.Intercept2D(p.Y, p.X, q.Y, q.X, x))
			}
		}
	}
	return ys
}

func sortAsc(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func sortDesc(xs []float64) {
	sortAsc(xs)
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

func scanX(contours []geom.Polyline, xmin, ymin, xmax, ymax, step float64, meshName string, layerIndex int) ([]plan.GridSegment, error) {
	var out []plan.GridSegment
	row := 0
	for y := ymin + step; y <= ymax; y += step {
		xs := interceptsAtY(contours, y)
		if len(xs)%2 != 0 {
			return nil, errs.NewDegenerateLayer(meshName, layerIndex, y, len(xs))
		}

		ascending := row%2 == 0
		if ascending {
			sortAsc(xs)
		} else {
			sortDesc(xs)
		}

		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			if ascending {
				if x0 >= xmax {
					continue
				}
				if x0 < xmin {
					x0 = xmin
				}
				if x1 > xmax {
					x1 = xmax
				}
			} else {
				if x0 <= xmin {
					continue
				}
				if x0 > xmax {
					x0 = xmax
				}
				if x1 < xmin {
					x1 = xmin
				}
			}
			out = append(out, plan.GridSegment{X0: x0, Y0: y, X1: x1, Y1: y})
		}
		row++
	}
	return out, nil
}

func scanY(contours []geom.Polyline, xmin, ymin, xmax, ymax, step float64, meshName string, layerIndex int) ([]plan.GridSegment, error) {
	var out []plan.GridSegment
	row := 0
	for x := xmin + step; x <= xmax; x += step {
		ys := interceptsAtX(contours, x)
		if len(ys)%2 != 0 {
			return nil, errs.NewDegenerateLayer(meshName, layerIndex, x, len(ys))
		}

		ascending := row%2 == 0
		if ascending {
			sortAsc(ys)
		} else {
			sortDesc(ys)
		}

		for i := 0; i+1 < len(ys); i += 2 {
			y0, y1 := ys[i], ys[i+1]
			if ascending {
				if y0 >= ymax {
					continue
				}
				if y0 < ymin {
					y0 = ymin
				}
				if y1 > ymax {
					y1 = ymax
				}
			} else {
				if y0 <= ymin {
					continue
				}
				if y0 > ymax {
					y0 = ymax
				}
				if y1 < ymin {
					y1 = ymin
				}
			}
			out = append(out, plan.GridSegment{X0: x, Y0: y0, X1: x, Y1: y1})
		}
		row++
	}
	return out, nil
}
