// Command abbot is the CLI surface of the slicer (§6.3): it loads a
// configuration and one or more STL meshes, runs the core pipeline, and
// writes G-code. Structured as a github.com/spf13/cobra command tree in the
// same command-per-verb style as the teacher's own `steel` CLI (info,
// slice, cut -> here info, run).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	meshPaths  []string
	outPath    string
	verbose    bool
)

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "abbot",
		Short: "A fused-filament slicer core",
		Long:  "abbot slices triangulated STL meshes into a layered G-code toolpath plan.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("abbot -- a fused-filament slicer core.")
			cmd.Usage()
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print mesh info",
		Long:  "info displays triangle counts and bounding boxes for the given STL files.",
		Run:   runInfo,
	}
	infoCmd.Flags().StringArrayVarP(&meshPaths, "model", "m", nil, "STL file to inspect (repeatable)")
	rootCmd.AddCommand(infoCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Slice models and write G-code",
		Long:  "run arranges, slices, reconstructs and fills the given models, writing a G-code plan.",
		Run:   runSlice,
	}
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file (YAML). Defaults are used if omitted.")
	runCmd.Flags().StringArrayVarP(&meshPaths, "model", "m", nil, "STL file to slice (repeatable)")
	runCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output G-code file. Defaults to stdout.")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable progress logging to stderr.")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}
