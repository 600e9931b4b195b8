package slicer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/diag"
	"github.com/patrice-boulanger/abbot/internal/mesh"
	"github.com/patrice-boulanger/abbot/internal/slicer"
)

func unitCube() *mesh.Mesh {
	v := func(x, y, z float64) mesh.Vertex { return mesh.Vertex{X: x, Y: y, Z: z} }
	return mesh.New("cube", []mesh.Facet{
		// bottom z=0
		{V: [3]mesh.Vertex{v(0, 0, 0), v(2, 0, 0), v(2, 2, 0)}},
		{V: [3]mesh.Vertex{v(0, 0, 0), v(2, 2, 0), v(0, 2, 0)}},
		// top z=2
		{V: [3]mesh.Vertex{v(0, 0, 2), v(2, 0, 2), v(2, 2, 2)}},
		{V: [3]mesh.Vertex{v(0, 0, 2), v(2, 2, 2), v(0, 2, 2)}},
		// front y=0
		{V: [3]mesh.Vertex{v(0, 0, 0), v(2, 0, 0), v(2, 0, 2)}},
		{V: [3]mesh.Vertex{v(0, 0, 0), v(2, 0, 2), v(0, 0, 2)}},
		// back y=2
		{V: [3]mesh.Vertex{v(0, 2, 0), v(2, 2, 0), v(2, 2, 2)}},
		{V: [3]mesh.Vertex{v(0, 2, 0), v(2, 2, 2), v(0, 2, 2)}},
		// left x=0
		{V: [3]mesh.Vertex{v(0, 0, 0), v(0, 2, 0), v(0, 2, 2)}},
		{V: [3]mesh.Vertex{v(0, 0, 0), v(0, 2, 2), v(0, 0, 2)}},
		// right x=2
		{V: [3]mesh.Vertex{v(2, 0, 0), v(2, 2, 0), v(2, 2, 2)}},
		{V: [3]mesh.Vertex{v(2, 0, 0), v(2, 2, 2), v(2, 0, 2)}},
	})
}

// Scenario 1: a unit cube (2x2x2mm) sliced at Δ=1 produces layers at
// z in {0, 1, 2} (floor(2/1)+1 = 3), with the middle layer cutting all four
// side faces (two triangles each) and the top/bottom layers only the
// on-plane edge of one triangle per face (the other is a touch, not a cut).
func TestSliceUnitCubeScenario(t *testing.T) {
	cfg := config.Default()
	cfg.Quality = 1

	logger := diag.New(false)
	slices := slicer.Slice(cfg, []*mesh.Mesh{unitCube()}, logger)

	require.Len(t, slices, 3)
	assert.Equal(t, 0.0, slices[0].Z)
	assert.Equal(t, 1.0, slices[1].Z)
	assert.Equal(t, 2.0, slices[2].Z)

	require.Len(t, slices[0].Models, 1)
	assert.Len(t, slices[0].Models[0].Segments, 4)
	assert.Len(t, slices[1].Models[0].Segments, 8)
	assert.Len(t, slices[2].Models[0].Segments, 4)
}

func TestSliceEmptyMeshListReturnsNil(t *testing.T) {
	logger := diag.New(false)
	assert.Nil(t, slicer.Slice(config.Default(), nil, logger))
}
