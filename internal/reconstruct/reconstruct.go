// Package reconstruct implements the path reconstructor (§4.3): it stitches
// an unordered bag of Segment2D into ordered Polylines by endpoint
// matching, collapsing runs of collinear points. The naive contract is an
// O(n^2) scan; per the §9 design note this implementation instead keys
// segment endpoints by their already-canonicalized (Round8'd) coordinates
// in a hash map, so every match is O(1) amortized. Only the contract
// (the resulting polylines) is observable, not the matching order.
package reconstruct

import (
	"github.com/patrice-boulanger/abbot/internal/diag"
	"github.com/patrice-boulanger/abbot/internal/geom"
)

func key(p geom.Point) geom.Point {
	return geom.Point{X: geom.Round8(p.X), Y: geom.Round8(p.Y)}
}

// Reconstruct converts a bag of segments into a list of polylines.
func Reconstruct(segs []geom.Segment2D, logger *diag.Logger) []geom.Polyline {
	n := len(segs)
	if n == 0 {
		return nil
	}

	used := make([]bool, n)
	index := make(map[geom.Point][]int, 2*n)

	for i, s := range segs {
		if s.Degenerate() {
			used[i] = true
			continue
		}
		index[key(s.P0)] = append(index[key(s.P0)], i)
		index[key(s.P1)] = append(index[key(s.P1)], i)
	}

	pick := func(k geom.Point) (idx int, other geom.Point, ok bool) {
		best := -1
		for _, i := range index[k] {
			if used[i] {
				continue
			}
			if best == -1 || i < best {
				best = i
			}
		}
		if best == -1 {
			return 0, geom.Point{}, false
		}
		s := segs[best]
		if key(s.P0) == k {
			return best, s.P1, true
		}
		return best, s.P0, true
	}

	var polylines []geom.Polyline

	for {
		seed := -1
		for i := 0; i < n; i++ {
			if !used[i] {
				seed = i
				break
			}
		}
		if seed == -1 {
			break
		}
		used[seed] = true

		pts := []geom.Point{segs[seed].P0, segs[seed].P1}

		for {
			if idx, other, ok := pick(key(pts[0])); ok {
				used[idx] = true
				if len(pts) >= 2 && geom.Collinear(pts[0], pts[1], other) {
					pts[0] = other
				} else {
					pts = append([]geom.Point{other}, pts...)
				}
				continue
			}

			last := len(pts) - 1
			if idx, other, ok := pick(key(pts[last])); ok {
				used[idx] = true
				if last >= 1 && geom.Collinear(pts[last], pts[last-1], other) {
					pts[last] = other
				} else {
					pts = append(pts, other)
				}
				continue
			}

			break
		}

		distinct := dedupeAdjacent(pts)
		if len(distinct) < 2 {
			if logger != nil {
				logger.Progress("discarding single-point polyline after reconstruction")
			}
			continue
		}
		polylines = append(polylines, geom.Polyline{Points: distinct})
	}

	return polylines
}

// dedupeAdjacent removes adjacent duplicate points (within Epsilon), which
// can appear at closure (first ≈ last is allowed and kept) but should not
// appear as interior repeats.
func dedupeAdjacent(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return pts
	}
	out := []geom.Point{pts[0]}
	for _, p := range pts[1:] {
		if p.ApproxEqual(out[len(out)-1]) {
			continue
		}
		out = append(out, p)
	}
	return out
}
