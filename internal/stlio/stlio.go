// Package stlio adapts github.com/hschendel/stl (the STL reader used by the
// real Go slicer in the retrieval pack) into the core's mesh.Mesh type.
// Mesh file parsing itself is out of the core's scope (§1); this package is
// the thin seam between the third-party reader and the core's Facet/Vertex
// shape.
package stlio

import (
	"path/filepath"
	"strings"

	"github.com/hschendel/stl"

	"github.com/patrice-boulanger/abbot/internal/diag"
	"github.com/patrice-boulanger/abbot/internal/mesh"
)

// Load reads an STL file and adapts it into a named mesh.Mesh. Facets with
// a non-finite coordinate are a BadFacet (§7): logged and dropped rather
// than propagated.
func Load(path string, logger *diag.Logger) (*mesh.Mesh, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	facets := make([]mesh.Facet, 0, len(solid.Triangles))
	for i, t := range solid.Triangles {
		f := mesh.Facet{V: [3]mesh.Vertex{
			{X: float64(t.Vertices[0][0]), Y: float64(t.Vertices[0][1]), Z: float64(t.Vertices[0][2])},
			{X: float64(t.Vertices[1][0]), Y: float64(t.Vertices[1][1]), Z: float64(t.Vertices[1][2])},
			{X: float64(t.Vertices[2][0]), Y: float64(t.Vertices[2][1]), Z: float64(t.Vertices[2][2])},
		}}
		if !f.Finite() {
			logger.Warn("facet %d of %q has a non-finite coordinate, skipped on load", i, name)
			continue
		}
		facets = append(facets, f)
	}

	return mesh.New(name, facets), nil
}

// LoadAll loads every path in paths, stopping at the first error.
func LoadAll(paths []string, logger *diag.Logger) ([]*mesh.Mesh, error) {
	meshes := make([]*mesh.Mesh, 0, len(paths))
	for _, p := range paths {
		m, err := Load(p, logger)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}
