package gcodewriter_test

import (
	"bytes"
	"regexp"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/gcodewriter"
	"github.com/patrice-boulanger/abbot/internal/geom"
	"github.com/patrice-boulanger/abbot/internal/plan"
)

// P6: the running extrusion length E emitted across a whole plan is
// non-decreasing.
func TestWriteExtrusionLengthIsNonDecreasing(t *testing.T) {
	cfg := config.Default()
	w := gcodewriter.NewWriter(cfg)

	p := &plan.Plan{
		RunID: uuid.New(),
		Layers: []plan.LayerPlan{
			{
				Z:     0,
				Index: 0,
				Regions: []plan.Region{
					{
						Mesh: "a",
						Perimeters: []geom.Polyline{
							{Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}},
						},
						Infill: []plan.GridSegment{
							{X0: 1, Y0: 1, X1: 9, Y1: 1},
							{X0: 1, Y0: 2, X1: 9, Y1: 2},
						},
					},
				},
			},
			{
				Z:     0.2,
				Index: 1,
				Regions: []plan.Region{
					{
						Mesh: "a",
						Perimeters: []geom.Polyline{
							{Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}},
						},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, p))

	eRe := regexp.MustCompile(`E([0-9.]+)`)
	matches := eRe.FindAllStringSubmatch(buf.String(), -1)
	require.NotEmpty(t, matches)

	prev := -1.0
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestWriteRejectsShortPath(t *testing.T) {
	cfg := config.Default()
	w := gcodewriter.NewWriter(cfg)

	p := &plan.Plan{
		RunID: uuid.New(),
		Layers: []plan.LayerPlan{
			{
				Z: 0, Index: 0,
				Regions: []plan.Region{
					{
						Mesh:       "a",
						Perimeters: []geom.Polyline{{Points: []geom.Point{{X: 0, Y: 0}}}},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	assert.Error(t, w.Write(&buf, p))
}

func TestWriteEmitsRunIDHeader(t *testing.T) {
	cfg := config.Default()
	w := gcodewriter.NewWriter(cfg)
	id := uuid.New()

	p := &plan.Plan{RunID: id}
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, p))
	assert.Contains(t, buf.String(), id.String())
}
