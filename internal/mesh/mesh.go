// Package mesh holds the core's model of an input triangle mesh: vertices,
// facets, bounding box and the lazy translation applied by the arranger.
package mesh

import (
	"math"

	"github.com/patrice-boulanger/abbot/internal/geom"
)

// Vertex is a point in three-space, compared with geom.Epsilon.
type Vertex struct {
	X, Y, Z float64
}

// ApproxEqual reports whether v and w coincide within geom.Epsilon.
func (v Vertex) ApproxEqual(w Vertex) bool {
	return geom.ApproxEqual(v.X, w.X) && geom.ApproxEqual(v.Y, w.Y) && geom.ApproxEqual(v.Z, w.Z)
}

// Finite reports whether every component of v is a finite number. A facet
// with a non-finite vertex is a BadFacet (§7) and is skipped rather than
// propagated into the geometry pipeline.
func (v Vertex) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Facet is one triangle of the mesh surface: an ordered triple of vertices.
// Facet normal direction is not required by the core.
type Facet struct {
	V [3]Vertex
}

// ZMin and ZMax return the facet's z-extent.
func (f Facet) ZMin() float64 {
	z := f.V[0].Z
	if f.V[1].Z < z {
		z = f.V[1].Z
	}
	if f.V[2].Z < z {
		z = f.V[2].Z
	}
	return z
}

func (f Facet) ZMax() float64 {
	z := f.V[0].Z
	if f.V[1].Z > z {
		z = f.V[1].Z
	}
	if f.V[2].Z > z {
		z = f.V[2].Z
	}
	return z
}

// Finite reports whether all three vertices of the facet have finite
// coordinates.
func (f Facet) Finite() bool {
	return f.V[0].Finite() && f.V[1].Finite() && f.V[2].Finite()
}

// Mesh is a named, ordered sequence of facets plus an axis-aligned bounding
// box. Per the design notes, the mesh does not mutate its vertices in place:
// arrangement accumulates into Offset and bounds are reported through it,
// which removes the need to rebuild the bbox on every translate and makes
// read access to an arranged mesh trivially safe for concurrent slicing.
type Mesh struct {
	Name   string
	Facets []Facet

	// rawMin, rawMax are the bounding box of Facets as loaded, before any
	// translation.
	rawMin, rawMax Vertex

	// Offset is the accumulated translation applied by the arranger.
	Offset Vertex
}

// New builds a Mesh from a name and a populated facet list, computing the
// untranslated bounding box.
func New(name string, facets []Facet) *Mesh {
	m := &Mesh{Name: name, Facets: facets}
	m.recomputeBounds()
	return m
}

func (m *Mesh) recomputeBounds() {
	if len(m.Facets) == 0 {
		m.rawMin, m.rawMax = Vertex{}, Vertex{}
		return
	}
	min := m.Facets[0].V[0]
	max := min
	for _, f := range m.Facets {
		for _, v := range f.V {
			if v.X < min.X {
				min.X = v.X
			}
			if v.Y < min.Y {
				min.Y = v.Y
			}
			if v.Z < min.Z {
				min.Z = v.Z
			}
			if v.X > max.X {
				max.X = v.X
			}
			if v.Y > max.Y {
				max.Y = v.Y
			}
			if v.Z > max.Z {
				max.Z = v.Z
			}
		}
	}
	m.rawMin, m.rawMax = min, max
}

// Translate accumulates (tx, ty, tz) into the mesh's offset. It does not
// touch Facets; all read sites apply the offset lazily through BBoxMin,
// BBoxMax and At.
func (m *Mesh) Translate(tx, ty, tz float64) {
	m.Offset.X += tx
	m.Offset.Y += ty
	m.Offset.Z += tz
}

// BBoxMin and BBoxMax return the mesh's bounding box with the accumulated
// offset applied.
func (m *Mesh) BBoxMin() Vertex {
	return Vertex{m.rawMin.X + m.Offset.X, m.rawMin.Y + m.Offset.Y, m.rawMin.Z + m.Offset.Z}
}

func (m *Mesh) BBoxMax() Vertex {
	return Vertex{m.rawMax.X + m.Offset.X, m.rawMax.Y + m.Offset.Y, m.rawMax.Z + m.Offset.Z}
}

// At returns the i'th vertex of facet f with the mesh's offset applied.
func (m *Mesh) At(f Facet, i int) Vertex {
	v := f.V[i]
	return Vertex{v.X + m.Offset.X, v.Y + m.Offset.Y, v.Z + m.Offset.Z}
}

// ArrangedFacet returns facet f with the offset baked into its vertices, for
// callers (the slicer) that want a self-contained value.
func (m *Mesh) ArrangedFacet(f Facet) Facet {
	return Facet{V: [3]Vertex{m.At(f, 0), m.At(f, 1), m.At(f, 2)}}
}

// ZExtent returns the arranged mesh's z-extent (bbox max z minus bbox min
// z). A mesh that collapses to a single plane after arrangement is an
// EmptyModel (§7): it is logged and skipped, not an error.
func (m *Mesh) ZExtent() float64 {
	return m.BBoxMax().Z - m.BBoxMin().Z
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
