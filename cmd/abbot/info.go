package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrice-boulanger/abbot/internal/diag"
	"github.com/patrice-boulanger/abbot/internal/stlio"
)

func runInfo(cmd *cobra.Command, args []string) {
	if len(meshPaths) == 0 {
		fail("no models specified, use -m")
	}

	logger := diag.New(false)

	for _, path := range meshPaths {
		m, err := stlio.Load(path, logger)
		if err != nil {
			fail(fmt.Sprintf("failed to read STL file %q: %v", path, err))
		}
		min, max := m.BBoxMin(), m.BBoxMax()
		fmt.Printf("File: %s\n", path)
		fmt.Printf("Triangles: %d\n", len(m.Facets))
		fmt.Printf("Bounding box: %v - %v\n", min, max)
	}
}
