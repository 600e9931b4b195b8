package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patrice-boulanger/abbot/internal/mesh"
)

func unitCubeFacets() []mesh.Facet {
	// Two triangles forming the cube's bottom face, z=0..2.
	return []mesh.Facet{
		{V: [3]mesh.Vertex{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}}},
		{V: [3]mesh.Vertex{{0, 0, 0}, {2, 2, 0}, {0, 2, 0}}},
		{V: [3]mesh.Vertex{{0, 0, 2}, {2, 0, 2}, {2, 2, 2}}},
	}
}

func TestNewComputesBounds(t *testing.T) {
	m := mesh.New("cube", unitCubeFacets())
	assert.Equal(t, mesh.Vertex{X: 0, Y: 0, Z: 0}, m.BBoxMin())
	assert.Equal(t, mesh.Vertex{X: 2, Y: 2, Z: 2}, m.BBoxMax())
}

func TestTranslateIsLazyAndAccumulates(t *testing.T) {
	m := mesh.New("cube", unitCubeFacets())
	m.Translate(10, 5, 0)
	m.Translate(1, 1, 0)

	assert.Equal(t, mesh.Vertex{X: 11, Y: 6, Z: 0}, m.BBoxMin())
	assert.Equal(t, mesh.Vertex{X: 13, Y: 8, Z: 2}, m.BBoxMax())

	// Facets themselves are untouched by Translate.
	assert.Equal(t, mesh.Vertex{X: 0, Y: 0, Z: 0}, m.Facets[0].V[0])
}

func TestAtAndArrangedFacetApplyOffset(t *testing.T) {
	m := mesh.New("cube", unitCubeFacets())
	m.Translate(1, 2, 3)

	got := m.At(m.Facets[0], 0)
	assert.Equal(t, mesh.Vertex{X: 1, Y: 2, Z: 3}, got)

	af := m.ArrangedFacet(m.Facets[0])
	assert.Equal(t, mesh.Vertex{X: 3, Y: 2, Z: 3}, af.V[1])
}

func TestZExtent(t *testing.T) {
	m := mesh.New("cube", unitCubeFacets())
	assert.Equal(t, 2.0, m.ZExtent())

	flat := mesh.New("flat", []mesh.Facet{
		{V: [3]mesh.Vertex{{0, 0, 5}, {1, 0, 5}, {0, 1, 5}}},
	})
	assert.Equal(t, 0.0, flat.ZExtent())
}

func TestFacetFiniteRejectsNaNAndInf(t *testing.T) {
	good := mesh.Facet{V: [3]mesh.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
	assert.True(t, good.Finite())

	bad := mesh.Facet{V: [3]mesh.Vertex{{0, 0, 0}, {math.NaN(), 0, 0}, {0, 1, 0}}}
	assert.False(t, bad.Finite())

	bad2 := mesh.Facet{V: [3]mesh.Vertex{{0, 0, 0}, {math.Inf(1), 0, 0}, {0, 1, 0}}}
	assert.False(t, bad2.Finite())
}

func TestFacetZMinZMax(t *testing.T) {
	f := mesh.Facet{V: [3]mesh.Vertex{{0, 0, 3}, {0, 0, -1}, {0, 0, 7}}}
	assert.Equal(t, -1.0, f.ZMin())
	assert.Equal(t, 7.0, f.ZMax())
}
