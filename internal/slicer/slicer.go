// Package slicer implements the layer slicer (§4.2): for each z-plane it
// intersects every facet of every mesh with that plane and emits an
// unordered bag of 2D segments per mesh. Facet/plane intersection is
// classified by the table in §4.2; geometric degeneracies are absorbed,
// never raised as errors.
package slicer

import (
	"math"

	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/diag"
	"github.com/patrice-boulanger/abbot/internal/geom"
	"github.com/patrice-boulanger/abbot/internal/mesh"
	"github.com/patrice-boulanger/abbot/internal/plan"
)

// side classifies a vertex against a slicing plane.
type side int

const (
	below side = -1
	on    side = 0
	above side = 1
)

func classify(z, planeZ float64) side {
	if geom.OnPlane(z, planeZ) {
		return on
	}
	if z < planeZ {
		return below
	}
	return above
}

// facetSegment applies the classification table of §4.2 to one facet at one
// plane. It returns the emitted segment and true, or the zero value and
// false when the table says to emit nothing.
func facetSegment(f mesh.Facet, planeZ float64) (geom.Segment2D, bool) {
	var s [3]side
	for i := 0; i < 3; i++ {
		s[i] = classify(f.V[i].Z, planeZ)
	}

	onCount := 0
	for _, si := range s {
		if si == on {
			onCount++
		}
	}

	switch onCount {
	case 3:
		// All three vertices on the plane: coplanar facet, its edges are
		// covered by its neighbours.
		return geom.Segment2D{}, false

	case 2:
		// Exactly two vertices on the plane: emit the edge connecting them.
		var i, j int
		found := 0
		for k := 0; k < 3; k++ {
			if s[k] == on {
				if found == 0 {
					i = k
				} else {
					j = k
				}
				found++
			}
		}
		return segFromVertices(f.V[i], f.V[j], planeZ), true

	case 1:
		var onIdx int
		for k := 0; k < 3; k++ {
			if s[k] == on {
				onIdx = k
			}
		}
		j := (onIdx + 1) % 3
		k := (onIdx + 2) % 3
		if s[j] == s[k] {
			// Touch, not a cut.
			return geom.Segment2D{}, false
		}
		// The opposite edge (j, k) crosses the plane; emit a segment from
		// the on-plane vertex to that crossing point.
		cross := edgeCrossing(f.V[j], f.V[k], planeZ)
		onPt := geom.Point{X: geom.Round8(f.V[onIdx].X), Y: geom.Round8(f.V[onIdx].Y)}
		return geom.Segment2D{P0: onPt, P1: cross}, true

	default: // onCount == 0
		// No vertex on the plane. If the plane separates one vertex from
		// the other two, emit the segment joining the two edge crossings.
		var lone int
		switch {
		case s[0] != s[1] && s[1] == s[2]:
			lone = 0
		case s[1] != s[0] && s[0] == s[2]:
			lone = 1
		case s[2] != s[0] && s[0] == s[1]:
			lone = 2
		default:
			// All three on the same side strictly.
			return geom.Segment2D{}, false
		}
		a := (lone + 1) % 3
		b := (lone + 2) % 3
		p0 := edgeCrossing(f.V[lone], f.V[a], planeZ)
		p1 := edgeCrossing(f.V[lone], f.V[b], planeZ)
		return geom.Segment2D{P0: p0, P1: p1}, true
	}
}

func segFromVertices(a, b mesh.Vertex, _ float64) geom.Segment2D {
	return geom.Segment2D{
		P0: geom.Point{X: geom.Round8(a.X), Y: geom.Round8(a.Y)},
		P1: geom.Point{X: geom.Round8(b.X), Y: geom.Round8(b.Y)},
	}
}

// edgeCrossing returns the xy point where edge (a, b) crosses z = planeZ,
// interpolated by the intercept theorem and canonicalized to 8 decimal
// digits so two facets sharing an edge produce coincident endpoints.
func edgeCrossing(a, b mesh.Vertex, planeZ float64) geom.Point {
	alpha := (planeZ - a.Z) / (b.Z - a.Z)
	return geom.Point{
		X: geom.Round8(a.X + alpha*(b.X-a.X)),
		Y: geom.Round8(a.Y + alpha*(b.Y-a.Y)),
	}
}

// workingSet is the per-mesh incremental facet classification (§9 design
// note): `intersect` holds facets whose z-extent straddles the current
// plane, `above` holds facets entirely above it. Both are rebuilt on each
// layer advance rather than mutated while iterating.
type workingSet struct {
	m          *mesh.Mesh
	facets     []mesh.Facet // arranged, offset already applied
	intersect  []int
	above      []int
	loggedLow  bool
}

func newWorkingSet(m *mesh.Mesh, logger *diag.Logger) *workingSet {
	facets := make([]mesh.Facet, len(m.Facets))
	for i, f := range m.Facets {
		facets[i] = m.ArrangedFacet(f)
	}

	ws := &workingSet{m: m, facets: facets}

	for i, f := range facets {
		if !f.Finite() {
			logger.Warn("facet %d of mesh %q has a non-finite coordinate, skipped", i, m.Name)
			continue
		}
		zmin, zmax := f.ZMin(), f.ZMax()
		switch {
		case zmax < -geom.Epsilon:
			if !ws.loggedLow {
				logger.Warn("mesh %q has facets entirely below z=0, ignored", m.Name)
				ws.loggedLow = true
			}
		case zmin <= geom.Epsilon:
			ws.intersect = append(ws.intersect, i)
		default:
			ws.above = append(ws.above, i)
		}
	}

	return ws
}

// advance updates the working set for the next slicing plane at z.
func (ws *workingSet) advance(z float64) {
	kept := ws.intersect[:0:0]
	for _, idx := range ws.intersect {
		if ws.facets[idx].ZMax() >= z-geom.Epsilon {
			kept = append(kept, idx)
		}
	}

	var stillAbove []int
	for _, idx := range ws.above {
		if ws.facets[idx].ZMin() <= z+geom.Epsilon {
			kept = append(kept, idx)
		} else {
			stillAbove = append(stillAbove, idx)
		}
	}

	ws.intersect = kept
	ws.above = stillAbove
}

func (ws *workingSet) slice(z float64) []geom.Segment2D {
	var segs []geom.Segment2D
	for _, idx := range ws.intersect {
		seg, ok := facetSegment(ws.facets[idx], z)
		if !ok || seg.Degenerate() {
			continue
		}
		segs = append(segs, seg)
	}
	return segs
}

// Slice produces one Slice per z in {0, Δ, 2Δ, ..., z_max}, where z_max is
// the lesser of the maximum bbox_max.z across meshes and the printer's Z
// extent.
func Slice(cfg config.Configuration, meshes []*mesh.Mesh, logger *diag.Logger) []plan.Slice {
	if len(meshes) == 0 {
		return nil
	}

	delta := cfg.Quality

	zMax := 0.0
	for _, m := range meshes {
		if z := m.BBoxMax().Z; z > zMax {
			zMax = z
		}
	}
	if cap := cfg.ZMax(); cap < zMax {
		zMax = cap
	}

	sets := make([]*workingSet, len(meshes))
	for i, m := range meshes {
		sets[i] = newWorkingSet(m, logger)
	}

	var slices []plan.Slice
	nLayers := int(math.Floor(zMax/delta+geom.Epsilon)) + 1

	for layer := 0; layer < nLayers; layer++ {
		z := float64(layer) * delta
		if layer > 0 {
			for _, ws := range sets {
				ws.advance(z)
			}
		}

		s := plan.Slice{Z: z}
		for i, m := range meshes {
			segs := sets[i].slice(z)
			s.Models = append(s.Models, plan.ModelSlice{Mesh: m.Name, Segments: segs})
		}
		slices = append(slices, s)
	}

	return slices
}
