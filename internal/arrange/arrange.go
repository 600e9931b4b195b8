// Package arrange implements the plate arranger (§4.1): a greedy
// guillotine-split bin packing of mesh footprints onto the printer plate,
// grounded on the sub-plate list maintained by original_source/slicer.py's
// run() method (sorted-by-area free rectangles, split on placement).
package arrange

import (
	"sort"

	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/errs"
	"github.com/patrice-boulanger/abbot/internal/mesh"
)

// rect is a free rectangle on the plate, origin at (X, Y).
type rect struct {
	X, Y, W, H float64
}

func (r rect) area() float64 { return r.W * r.H }

// footprint is a mesh's xy-extent, cached before sorting.
type footprint struct {
	m          *mesh.Mesh
	w, h       float64
	bboxMinX   float64
	bboxMinY   float64
	bboxMinZ   float64
}

// Arrange mutates each mesh by translation so that (a) z_min becomes 0,
// (b) 2D footprints are disjoint with a gap of at least config.PlateGap,
// (c) every footprint fits within the usable plate area, (d) the union of
// footprints is centered on the plate. Returns a PlateOverflow error,
// terminal for the run, if any mesh cannot be placed.
func Arrange(cfg config.Configuration, meshes []*mesh.Mesh) error {
	if len(meshes) == 0 {
		return nil
	}

	footprints := make([]footprint, len(meshes))
	for i, m := range meshes {
		min, max := m.BBoxMin(), m.BBoxMax()
		footprints[i] = footprint{
			m:        m,
			w:        max.X - min.X,
			h:        max.Y - min.Y,
			bboxMinX: min.X,
			bboxMinY: min.Y,
			bboxMinZ: min.Z,
		}
	}

	// Sort by descending footprint area.
	sort.SliceStable(footprints, func(i, j int) bool {
		return footprints[i].w*footprints[i].h > footprints[j].w*footprints[j].h
	})

	plateW, plateH := cfg.PlateX(), cfg.PlateY()
	free := []rect{{X: 0, Y: 0, W: plateW, H: plateH}}

	type placed struct {
		fp   footprint
		x, y float64
	}
	var placements []placed

	for _, fp := range footprints {
		pw, ph := fp.w+config.PlateGap, fp.h+config.PlateGap

		sort.SliceStable(free, func(i, j int) bool { return free[i].area() < free[j].area() })

		idx := -1
		for i, r := range free {
			if pw <= r.W && ph <= r.H {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errs.NewPlateOverflow(fp.m.Name)
		}

		r := free[idx]
		free = append(free[:idx], free[idx+1:]...)

		placeX, placeY := r.X+config.PlateGap, r.Y+config.PlateGap

		right := rect{X: r.X + pw, Y: r.Y, W: r.W - pw, H: ph}
		above := rect{X: r.X, Y: r.Y + ph, W: r.W, H: r.H - ph}
		if right.W > 0 && right.H > 0 {
			free = append(free, right)
		}
		if above.W > 0 && above.H > 0 {
			free = append(free, above)
		}

		placements = append(placements, placed{fp: fp, x: placeX, y: placeY})
	}

	// Translate each mesh to its placement, z_min to 0.
	for _, p := range placements {
		p.fp.m.Translate(p.x-p.fp.bboxMinX, p.y-p.fp.bboxMinY, -p.fp.bboxMinZ)
	}

	// Center the union of placed footprints on the plate.
	unionMinX, unionMinY := placements[0].x, placements[0].y
	unionMaxX, unionMaxY := placements[0].x+placements[0].fp.w, placements[0].y+placements[0].fp.h
	for _, p := range placements[1:] {
		if p.x < unionMinX {
			unionMinX = p.x
		}
		if p.y < unionMinY {
			unionMinY = p.y
		}
		if p.x+p.fp.w > unionMaxX {
			unionMaxX = p.x + p.fp.w
		}
		if p.y+p.fp.h > unionMaxY {
			unionMaxY = p.y + p.fp.h
		}
	}

	fullPlateW, fullPlateH := cfg.Printer.Max[0], cfg.Printer.Max[1]
	centerTx := (fullPlateW-(unionMaxX-unionMinX))/2 - unionMinX
	centerTy := (fullPlateH-(unionMaxY-unionMinY))/2 - unionMinY

	for _, p := range placements {
		p.fp.m.Translate(centerTx, centerTy, 0)
	}

	return nil
}
