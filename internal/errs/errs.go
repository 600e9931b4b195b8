// Package errs holds the core's error kinds (§7). Geometry-level
// degeneracies are absorbed silently elsewhere; these four kinds are the
// only ones that ever surface to a caller.
package errs

import (
	"fmt"

	"github.com/ztrue/tracerr"
)

// PlateOverflow means a mesh does not fit on the plate at arrangement time.
// It is terminal for the run.
type PlateOverflow struct {
	Mesh string
}

func (e *PlateOverflow) Error() string {
	return fmt.Sprintf("mesh %q does not fit on the plate", e.Mesh)
}

// NewPlateOverflow builds a PlateOverflow wrapped with a source-annotated
// stack trace.
func NewPlateOverflow(mesh string) error {
	return tracerr.Wrap(&PlateOverflow{Mesh: mesh})
}

// DegenerateLayer means the intercept-count invariant (§4.4) was violated
// for a scan line. It is terminal for the region that raised it, not for
// the whole run.
type DegenerateLayer struct {
	Mesh    string
	Layer   int
	Y       float64
	NumHits int
}

func (e *DegenerateLayer) Error() string {
	return fmt.Sprintf("layer %d of mesh %q: odd number of intercepts (%d) at y=%.6f", e.Layer, e.Mesh, e.NumHits, e.Y)
}

// NewDegenerateLayer builds a DegenerateLayer wrapped with a source-annotated
// stack trace.
func NewDegenerateLayer(mesh string, layer int, y float64, numHits int) error {
	return tracerr.Wrap(&DegenerateLayer{Mesh: mesh, Layer: layer, Y: y, NumHits: numHits})
}

// EmptyModel means that, after arrangement, a mesh has zero z-extent. It is
// logged and the mesh is skipped; it is never returned as an error to a
// caller that would treat it as fatal.
type EmptyModel struct {
	Mesh string
}

func (e *EmptyModel) Error() string {
	return fmt.Sprintf("mesh %q has zero z-extent after arrangement", e.Mesh)
}

// BadFacet means a facet has a non-finite coordinate. It is logged and the
// facet is skipped.
type BadFacet struct {
	Mesh  string
	Index int
}

func (e *BadFacet) Error() string {
	return fmt.Sprintf("facet %d of mesh %q has a non-finite coordinate", e.Index, e.Mesh)
}
