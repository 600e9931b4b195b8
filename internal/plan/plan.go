// Package plan holds the pipeline's per-stage intermediate types (the
// slicer's Slice, the final Plan) so arrange/slicer/reconstruct/infill don't
// need to import each other.
package plan

import (
	"github.com/google/uuid"

	"github.com/patrice-boulanger/abbot/internal/geom"
)

// GridSegment is an axis-aligned infill segment, traversed at infill feed
// rate.
type GridSegment struct {
	X0, Y0, X1, Y1 float64
}

// ModelSlice is one mesh's unordered bag of 2D segments at one z-plane.
type ModelSlice struct {
	Mesh     string
	Segments []geom.Segment2D
}

// Slice is one z-plane: one ModelSlice per mesh.
type Slice struct {
	Z      float64
	Models []ModelSlice
}

// Region is a model's contribution to one layer: its reconstructed
// perimeters and its infill scan segments.
type Region struct {
	Mesh       string
	Perimeters []geom.Polyline
	Infill     []GridSegment
}

// LayerPlan is one layer of the final plan: one Region per sliced model; a
// model with no segments at that z still gets an (empty) Region.
type LayerPlan struct {
	Z       float64
	Index   int
	Regions []Region
}

// Plan is the pipeline's output: a sequence of layers in monotonic z order.
type Plan struct {
	RunID  uuid.UUID
	Layers []LayerPlan
}
