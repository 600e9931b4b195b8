package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/diag"
	"github.com/patrice-boulanger/abbot/internal/mesh"
	"github.com/patrice-boulanger/abbot/internal/pipeline"
)

func cube(name string, side float64) *mesh.Mesh {
	v := func(x, y, z float64) mesh.Vertex { return mesh.Vertex{X: x, Y: y, Z: z} }
	s := side
	return mesh.New(name, []mesh.Facet{
		{V: [3]mesh.Vertex{v(0, 0, 0), v(s, 0, 0), v(s, s, 0)}},
		{V: [3]mesh.Vertex{v(0, 0, 0), v(s, s, 0), v(0, s, 0)}},
		{V: [3]mesh.Vertex{v(0, 0, s), v(s, 0, s), v(s, s, s)}},
		{V: [3]mesh.Vertex{v(0, 0, s), v(s, s, s), v(0, s, s)}},
		{V: [3]mesh.Vertex{v(0, 0, 0), v(s, 0, 0), v(s, 0, s)}},
		{V: [3]mesh.Vertex{v(0, 0, 0), v(s, 0, s), v(0, 0, s)}},
		{V: [3]mesh.Vertex{v(0, s, 0), v(s, s, 0), v(s, s, s)}},
		{V: [3]mesh.Vertex{v(0, s, 0), v(s, s, s), v(0, s, s)}},
		{V: [3]mesh.Vertex{v(0, 0, 0), v(0, s, 0), v(0, s, s)}},
		{V: [3]mesh.Vertex{v(0, 0, 0), v(0, s, s), v(0, 0, s)}},
		{V: [3]mesh.Vertex{v(s, 0, 0), v(s, s, 0), v(s, s, s)}},
		{V: [3]mesh.Vertex{v(s, 0, 0), v(s, s, s), v(s, 0, s)}},
	})
}

func TestDriverRunEndToEnd(t *testing.T) {
	cfg := config.Default()
	cfg.Quality = 1
	cfg.Printer.Max = [3]float64{200, 200, 200}

	d := &pipeline.Driver{Logger: diag.New(false)}
	p, err := d.Run(cfg, []*mesh.Mesh{cube("a", 10)})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotEqual(t, p.RunID.String(), "")
	// floor(10/1)+1 = 11 layers
	assert.Len(t, p.Layers, 11)

	for i, lp := range p.Layers {
		assert.Equal(t, i, lp.Index)
		require.Len(t, lp.Regions, 1)
		assert.Equal(t, "a", lp.Regions[0].Mesh)
	}
}

// P5: two runs over identical meshes and configuration produce
// byte-identical plans — including RunID, which must therefore be derived
// from the input rather than randomly generated.
func TestDriverRunIsDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Quality = 1
	cfg.Printer.Max = [3]float64{200, 200, 200}

	d := &pipeline.Driver{Logger: diag.New(false)}

	p1, err := d.Run(cfg, []*mesh.Mesh{cube("a", 10)})
	require.NoError(t, err)
	p2, err := d.Run(cfg, []*mesh.Mesh{cube("a", 10)})
	require.NoError(t, err)

	assert.Equal(t, p1.RunID, p2.RunID)
	assert.Equal(t, p1, p2)
}

func TestDriverRunSkipsEmptyModel(t *testing.T) {
	cfg := config.Default()
	flat := mesh.New("flat", []mesh.Facet{
		{V: [3]mesh.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
	})

	d := &pipeline.Driver{Logger: diag.New(false)}
	p, err := d.Run(cfg, []*mesh.Mesh{flat})
	require.NoError(t, err)
	assert.Empty(t, p.Layers)
}

func TestDriverRunPropagatesPlateOverflow(t *testing.T) {
	cfg := config.Default()
	huge := cube("huge", 10000)

	d := &pipeline.Driver{Logger: diag.New(false)}
	_, err := d.Run(cfg, []*mesh.Mesh{huge})
	assert.Error(t, err)
}
