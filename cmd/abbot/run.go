package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patrice-boulanger/abbot/internal/config"
	"github.com/patrice-boulanger/abbot/internal/diag"
	"github.com/patrice-boulanger/abbot/internal/gcodewriter"
	"github.com/patrice-boulanger/abbot/internal/pipeline"
	"github.com/patrice-boulanger/abbot/internal/stlio"
)

func runSlice(cmd *cobra.Command, args []string) {
	if len(meshPaths) == 0 {
		fail("no models specified, use -m")
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fail(fmt.Sprintf("failed to load configuration %q: %v", configPath, err))
		}
		cfg = loaded
	}
	cfg.Verbose = verbose || cfg.Verbose

	logger := diag.New(cfg.Verbose)

	meshes, err := stlio.LoadAll(meshPaths, logger)
	if err != nil {
		fail(fmt.Sprintf("failed to read STL files: %v", err))
	}

	driver := &pipeline.Driver{Logger: logger}
	p, err := driver.Run(cfg, meshes)
	if err != nil {
		fail(fmt.Sprintf("slicing failed: %v", err))
	}

	w, err := openOut(outPath)
	if err != nil {
		fail(fmt.Sprintf("failed to open output %q: %v", outPath, err))
	}
	defer w.Close()

	if err := gcodewriter.NewWriter(cfg).Write(w, p); err != nil {
		fail(fmt.Sprintf("failed to write G-code: %v", err))
	}
}

func openOut(path string) (interface {
	Write(p []byte) (int, error)
	Close() error
}, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}
