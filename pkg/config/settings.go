// Package config holds the generator settings: density level, fabricator
// tolerances, clearances and drawing defaults. Settings are plain values;
// load them once and pass them down, nothing mutates them afterwards.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/ipc"
)

// Settings drives every land pattern calculation. All lengths are in
// millimeters.
type Settings struct {
	DensityLevel       ipc.Density `toml:"densityLevel"`
	Decimals           int         `toml:"decimals"`
	PreferManufacturer bool        `toml:"preferManufacturer"`

	Tolerance Tolerance `toml:"tolerance"`
	Clearance Clearance `toml:"clearance"`
	Ratio     Ratio     `toml:"ratio"`
	Minimum   Minimum   `toml:"minimum"`
	LineWidth LineWidth `toml:"lineWidth"`
	FontSize  FontSize  `toml:"fontSize"`
	Ball      Ball      `toml:"ball"`
}

// Tolerance models the assembly process spread added to package
// tolerances in the RMS stack.
type Tolerance struct {
	Fabrication float64 `toml:"fabrication"`
	Placement   float64 `toml:"placement"`
}

// Clearance sets the minimum distances kept between features.
type Clearance struct {
	PadToSilk  float64 `toml:"padToSilk"`
	SilkToPad  float64 `toml:"silkToPad"`
	PadToPad   float64 `toml:"padToPad"`
	PadToMask  float64 `toml:"padToMask"`
	LeadToHole float64 `toml:"leadToHole"`
}

// Ratio holds derived-size ratios for through-hole pads.
type Ratio struct {
	PadToHole float64 `toml:"padToHole"`
}

// Minimum holds hard floors applied after the calculations.
type Minimum struct {
	RingWidth    float64 `toml:"ringWidth"`
	HoleDiameter float64 `toml:"holeDiameter"`
	MaskWidth    float64 `toml:"maskWidth"`
	SpaceForIron float64 `toml:"spaceForIron"`
}

// LineWidth sets the stroke width per drawing layer.
type LineWidth struct {
	Silkscreen float64 `toml:"silkscreen"`
	Assembly   float64 `toml:"assembly"`
	Courtyard  float64 `toml:"courtyard"`
}

// FontSize sets text sizes on the drawing layers.
type FontSize struct {
	Default float64 `toml:"default"`
}

// Ball describes BGA ball behaviour during reflow.
type Ball struct {
	Collapsible bool `toml:"collapsible"`
}

// Default returns the settings used when no configuration file is given.
func Default() Settings {
	return Settings{
		DensityLevel:       ipc.Nominal,
		Decimals:           3,
		PreferManufacturer: true,
		Tolerance: Tolerance{
			Fabrication: 0.1,
			Placement:   0.1,
		},
		Clearance: Clearance{
			PadToSilk:  0.2,
			SilkToPad:  0.2,
			PadToPad:   0.2,
			PadToMask:  0.0,
			LeadToHole: 0.1,
		},
		Ratio: Ratio{PadToHole: 1.5},
		Minimum: Minimum{
			RingWidth:    0.2,
			HoleDiameter: 0.2,
			MaskWidth:    0.2,
			SpaceForIron: 0.0,
		},
		LineWidth: LineWidth{
			Silkscreen: 0.12,
			Assembly:   0.1,
			Courtyard:  0.05,
		},
		FontSize: FontSize{Default: 1},
		Ball:     Ball{Collapsible: true},
	}
}

// Load reads a TOML settings file on top of the defaults. Keys absent
// from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := os.Stat(path); err != nil {
		return s, fmt.Errorf("settings file not found: %w", err)
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if !s.DensityLevel.Valid() {
		return s, fmt.Errorf("invalid density level %q: must be L, N or M", s.DensityLevel)
	}
	return s, nil
}
