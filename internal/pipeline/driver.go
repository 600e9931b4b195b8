// Package pipeline sequences the core stages: arrange -> slice (all
// layers) -> reconstruct (per slice) -> infill (per region). The staged
// order of Driver.Run is grounded on the Go slicer
// implementation in the retrieval pack
// (other_examples/2dbcf76d_galamdring-GoSlice__goslice.go.go), whose
// top-level type wires a Reader, Optimizer, Slicer, Modifiers, Generator
// and Writer together in this order. Driver itself holds only a Logger;
// the stages are called as package functions.
package pipeline

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/patrice-boulanger/abbot/internal/arrange"
	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/diag"
	"github.com/patrice-boulanger/abbot/internal/infill"
	"github.com/patrice-boulanger/abbot/internal/mesh"
	"github.com/patrice-boulanger/abbot/internal/plan"
	"github.com/patrice-boulanger/abbot/internal/reconstruct"
	"github.com/patrice-boulanger/abbot/internal/slicer"
)

// Driver runs the full pipeline. The zero value is ready to use; Logger
// defaults to a non-verbose stderr logger if left nil.
type Driver struct {
	Logger *diag.Logger
}

// Run arranges meshes on the plate, slices them into layers, reconstructs
// each layer's perimeters and fills them, returning the finished Plan.
// Meshes with zero z-extent after arrangement are logged and skipped
// (EmptyModel, §7), as are regions whose infill raises DegenerateLayer;
// everything else is terminal via the returned error.
func (d *Driver) Run(cfg config.Configuration, meshes []*mesh.Mesh) (*plan.Plan, error) {
	logger := d.Logger
	if logger == nil {
		logger = diag.New(cfg.Verbose)
	}

	if err := arrange.Arrange(cfg, meshes); err != nil {
		return nil, err
	}

	var usable []*mesh.Mesh
	for _, m := range meshes {
		if m.ZExtent() <= 0 {
			logger.Warn("mesh %q has zero z-extent after arrangement, skipped", m.Name)
			continue
		}
		usable = append(usable, m)
	}

	slices := slicer.Slice(cfg, usable, logger)
	layers := make([]plan.LayerPlan, len(slices))

	// Per §5, the slicer's layers are independent once arrangement is
	// complete: reconstruction and infill are fanned out across a bounded
	// worker pool, with results collected by layer index so the final
	// plan's layer order always matches the monotonic z order regardless
	// of completion order.
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > len(slices) {
		workers = len(slices)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var firstErr error
	var errMu sync.Mutex

	worker := func() {
		defer wg.Done()
		for idx := range jobs {
			lp, err := processLayer(slices[idx], idx, len(slices), cfg, logger)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				continue
			}
			layers[idx] = lp
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}
	for idx := range slices {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return &plan.Plan{RunID: planID(cfg, usable), Layers: layers}, nil
}

// planID derives a run identifier deterministically from the arranged
// meshes and configuration that produced the plan, so that two runs over
// identical input produce byte-identical plans (P5): a random v4 UUID
// here would make RunID, and therefore the whole Plan, differ run to run.
func planID(cfg config.Configuration, meshes []*mesh.Mesh) uuid.UUID {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%+v\n", cfg)
	for _, m := range meshes {
		fmt.Fprintf(&buf, "%s %+v\n", m.Name, m.Offset)
		for _, f := range m.Facets {
			fmt.Fprintf(&buf, "%+v\n", f.V)
		}
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, buf.Bytes())
}

// processLayer reconstructs and fills every model-region of one slice. It
// is the unit of work fanned out across the worker pool: it touches only
// its own slice and layer index, never shared mutable state.
func processLayer(s plan.Slice, layerIndex, layerCount int, cfg config.Configuration, logger *diag.Logger) (plan.LayerPlan, error) {
	lp := plan.LayerPlan{Z: s.Z, Index: layerIndex}
	step := infill.Step(cfg, layerIndex, layerCount)

	for _, ms := range s.Models {
		perimeters := reconstruct.Reconstruct(ms.Segments, logger)

		segs, err := infill.Fill(perimeters, step, layerIndex, ms.Mesh)
		if err != nil {
			// DegenerateLayer is terminal for this region only: it is
			// logged and the region is left out of the layer.
			logger.Warn("%v, region skipped", err)
			continue
		}

		lp.Regions = append(lp.Regions, plan.Region{
			Mesh:       ms.Mesh,
			Perimeters: perimeters,
			Infill:     segs,
		})
	}

	return lp, nil
}
