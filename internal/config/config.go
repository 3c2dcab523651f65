// Package config holds the generator's adjustable parameters: loaded from
// an optional JSON file, overridden by CLI flags, validated before any
// geometry work starts.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"roman-dodecahedron/internal/geometry"
)

// Config holds all dimensions and resolutions. Millimeters throughout.
type Config struct {
	VertexDiameter     float64   `json:"vertex_diameter_mm"`
	WallThickness      float64   `json:"wall_thickness_mm"`
	KnobRadius         float64   `json:"knob_radius_mm"`
	KnobOffsetFraction float64   `json:"knob_offset_fraction"`
	HoleDiameters      []float64 `json:"hole_diameters_mm"`
	SphereSegments     int       `json:"sphere_segments"`
	HoleSegments       int       `json:"hole_segments"`
	OutputPath         string    `json:"output_stl"`
}

// DefaultHoleDiameters is the latitude-band calibration table: one hole
// per face, largest for the southernmost band.
var DefaultHoleDiameters = []float64{35, 32, 29, 26, 23, 20, 17, 14, 12, 10, 8, 6}

// FaceBands labels each face's latitude band, index-aligned with
// DefaultHoleDiameters. Documentation data only; nothing in the geometry
// depends on it.
var FaceBands = []string{
	"Alexandria (25-27°N)",
	"Jerusalem (27-30°N)",
	"Cyprus (30-33°N)",
	"Rhodes (33-36°N)",
	"Athens (36-38°N)",
	"Rome (38-41°N)",
	"Massilia (41-44°N)",
	"Lugdunum (44-46°N)",
	"Augusta Treverorum (46-48°N)",
	"Colonia (48-51°N)",
	"Londinium (51-53°N)",
	"Eboracum (53-56°N)",
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values; Resolve fills those in afterward.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	VertexDiameter     float64
	WallThickness      float64
	KnobRadius         float64
	KnobOffsetFraction float64
	SphereSegments     int
	HoleSegments       int
	OutputPath         string
}

// Resolve applies flag overrides, then fills any remaining empty fields
// with the standard 80mm build.
func (c *Config) Resolve(flags Flags) {
	if flags.VertexDiameter > 0 {
		c.VertexDiameter = flags.VertexDiameter
	}
	if flags.WallThickness > 0 {
		c.WallThickness = flags.WallThickness
	}
	if flags.KnobRadius > 0 {
		c.KnobRadius = flags.KnobRadius
	}
	if flags.KnobOffsetFraction > 0 {
		c.KnobOffsetFraction = flags.KnobOffsetFraction
	}
	if flags.SphereSegments > 0 {
		c.SphereSegments = flags.SphereSegments
	}
	if flags.HoleSegments > 0 {
		c.HoleSegments = flags.HoleSegments
	}
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}

	if c.VertexDiameter <= 0 {
		c.VertexDiameter = 80
	}
	if c.WallThickness <= 0 {
		c.WallThickness = 3
	}
	if c.KnobRadius <= 0 {
		c.KnobRadius = 8
	}
	if c.KnobOffsetFraction <= 0 {
		c.KnobOffsetFraction = 0.3
	}
	if len(c.HoleDiameters) == 0 {
		c.HoleDiameters = append([]float64(nil), DefaultHoleDiameters...)
	}
	if c.SphereSegments <= 0 {
		c.SphereSegments = 16
	}
	if c.HoleSegments <= 0 {
		c.HoleSegments = 32
	}
	if c.OutputPath == "" {
		c.OutputPath = "roman_dodecahedron.stl"
	}
}

// Validate rejects configurations that must not reach geometry
// generation: wrong hole count, negative diameters, non-positive
// dimensions or resolutions.
func (c *Config) Validate() error {
	if c.VertexDiameter <= 0 {
		return fmt.Errorf("config: vertex diameter must be positive, got %g", c.VertexDiameter)
	}
	if c.WallThickness <= 0 {
		return fmt.Errorf("config: wall thickness must be positive, got %g", c.WallThickness)
	}
	if c.KnobRadius < 0 {
		return fmt.Errorf("config: knob radius must not be negative, got %g", c.KnobRadius)
	}
	if len(c.HoleDiameters) != geometry.NumFaces {
		return fmt.Errorf("config: got %d hole diameters, want %d", len(c.HoleDiameters), geometry.NumFaces)
	}
	for i, d := range c.HoleDiameters {
		if d < 0 {
			return fmt.Errorf("config: hole diameter for face %d is negative (%g)", i, d)
		}
	}
	if c.SphereSegments < 3 {
		return fmt.Errorf("config: sphere segments must be at least 3, got %d", c.SphereSegments)
	}
	if c.HoleSegments < 3 {
		return fmt.Errorf("config: hole segments must be at least 3, got %d", c.HoleSegments)
	}
	return nil
}
