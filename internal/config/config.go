// Package config loads and validates the immutable configuration record the
// core reads plate extents, layer thickness, nozzle/filament diameters and
// feed rates from. It is read-only once Load or Default returns.
package config

import (
	"fmt"
	"os"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v3"
)

// Printer holds the plate extents, in millimetres.
type Printer struct {
	Max [3]float64 `yaml:"max"`
}

// Extruder holds the nozzle and filament diameters, in millimetres.
type Extruder struct {
	NozzleDiameter   float64 `yaml:"nozzle_diameter"`
	FilamentDiameter float64 `yaml:"filament_diameter"`
}

// Speed holds the print, travel and infill feed rates, in mm/s.
type Speed struct {
	Print  float64 `yaml:"print"`
	Travel float64 `yaml:"travel"`
	Infill float64 `yaml:"infill"`
}

// Thickness holds the shell and top/bottom thickness, in millimetres.
// Reserved for downstream perimeter/skin planning (§6).
type Thickness struct {
	Shell     float64 `yaml:"shell"`
	TopBottom float64 `yaml:"top_bottom"`
}

// Configuration is the immutable record the pipeline reads its parameters
// from. It must not be mutated once the pipeline starts.
type Configuration struct {
	Printer   Printer   `yaml:"printer"`
	Quality   float64   `yaml:"quality"` // layer thickness Δ, mm
	Extruder  Extruder  `yaml:"extruder"`
	Speed     Speed     `yaml:"speed"`
	Thickness Thickness `yaml:"thickness"`
	Verbose   bool      `yaml:"verbose"`
}

// PlateGap is the minimum required gap between arranged footprints, mm.
const PlateGap = 10.0

// PlateUsage is the fraction of the plate extents the arranger is allowed
// to use, leaving a margin for the printer's own skirt/brim.
const PlateUsage = 0.9

// Default returns the configuration the reference tool shipped with, except
// for the nozzle diameter, which is 0.4mm here instead of 0.35mm.
func Default() Configuration {
	return Configuration{
		Printer: Printer{Max: [3]float64{200, 200, 200}},
		Quality: 0.2,
		Extruder: Extruder{
			NozzleDiameter:   0.4,
			FilamentDiameter: 1.75,
		},
		Speed: Speed{
			Print:  40,
			Travel: 150,
			Infill: 60,
		},
		Thickness: Thickness{
			Shell:     0.7,
			TopBottom: 0.6,
		},
	}
}

// Load reads a YAML configuration file, applying Default for any field left
// unspecified, then validates it.
func Load(path string) (Configuration, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, tracerr.Wrap(fmt.Errorf("reading configuration %q: %w", path, err))
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, tracerr.Wrap(fmt.Errorf("parsing configuration %q: %w", path, err))
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, tracerr.Wrap(err)
	}

	return cfg, nil
}

// Validate reports an error if the configuration cannot drive the pipeline:
// non-positive plate extents, layer thickness or diameters.
func (c Configuration) Validate() error {
	for i, v := range c.Printer.Max {
		if v <= 0 {
			return fmt.Errorf("printer.max[%d] must be positive, got %v", i, v)
		}
	}
	if c.Quality <= 0 {
		return fmt.Errorf("quality (layer thickness) must be positive, got %v", c.Quality)
	}
	if c.Extruder.NozzleDiameter <= 0 {
		return fmt.Errorf("extruder.nozzle_diameter must be positive, got %v", c.Extruder.NozzleDiameter)
	}
	if c.Extruder.FilamentDiameter <= 0 {
		return fmt.Errorf("extruder.filament_diameter must be positive, got %v", c.Extruder.FilamentDiameter)
	}
	return nil
}

// PlateX and PlateY are the usable plate extents after PlateUsage margin.
func (c Configuration) PlateX() float64 { return c.Printer.Max[0] * PlateUsage }
func (c Configuration) PlateY() float64 { return c.Printer.Max[1] * PlateUsage }

// ZMax is the plate's maximum build height.
func (c Configuration) ZMax() float64 { return c.Printer.Max[2] }
