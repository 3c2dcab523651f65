package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"roman-dodecahedron/internal/config"
	"roman-dodecahedron/internal/solid"
	"roman-dodecahedron/internal/stl"
)

const stlComment = "Roman Dodecahedron Navigation Device v1.0"

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	out := flag.String("out", "", "Output STL path (default: roman_dodecahedron.stl)")
	diameter := flag.Float64("diameter", 0, "Vertex-to-vertex diameter in mm (default: 80)")
	wall := flag.Float64("wall", 0, "Wall thickness in mm (default: 3)")
	knob := flag.Float64("knob", 0, "Knob radius in mm (default: 8)")
	knobOffset := flag.Float64("knob-offset", 0, "Knob outward offset as a fraction of its radius (default: 0.3)")
	sphereSegments := flag.Int("sphere-segments", 0, "Sphere angular resolution (default: 16)")
	holeSegments := flag.Int("hole-segments", 0, "Hole rim angular resolution (default: 32)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		VertexDiameter:     *diameter,
		WallThickness:      *wall,
		KnobRadius:         *knob,
		KnobOffsetFraction: *knobOffset,
		SphereSegments:     *sphereSegments,
		HoleSegments:       *holeSegments,
		OutputPath:         *out,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Roman Dodecahedron Navigation Device - STL Generator")
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Vertex-to-vertex diameter: %g mm\n", cfg.VertexDiameter)
	fmt.Printf("Wall thickness: %g mm\n", cfg.WallThickness)
	fmt.Printf("Knob radius: %g mm\n", cfg.KnobRadius)
	fmt.Println()
	fmt.Println("Hole diameters by face:")
	for i, d := range cfg.HoleDiameters {
		band := ""
		if i < len(config.FaceBands) {
			band = " - " + config.FaceBands[i]
		}
		fmt.Printf("  Face %2d: %5.1f mm%s\n", i+1, d, band)
	}
	fmt.Println()

	fmt.Println("Generating mesh...")
	start := time.Now()

	m, err := solid.Build(solid.Params{
		Circumradius:       cfg.VertexDiameter / 2,
		WallThickness:      cfg.WallThickness,
		KnobRadius:         cfg.KnobRadius,
		KnobOffsetFraction: cfg.KnobOffsetFraction,
		HoleDiameters:      cfg.HoleDiameters,
		SphereSegments:     cfg.SphereSegments,
		HoleSegments:       cfg.HoleSegments,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d triangles in %.2fs\n", m.Len(), time.Since(start).Seconds())

	fmt.Printf("Writing %s...\n", cfg.OutputPath)
	if err := stl.Write(cfg.OutputPath, stlComment, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done: %d triangles, %d bytes\n", m.Len(), stl.FileSize(m.Len()))
}
