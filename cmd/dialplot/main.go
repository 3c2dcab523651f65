package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"roman-dodecahedron/internal/dial"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

func main() {
	outDir := flag.String("out", ".", "Output directory")
	format := flag.String("format", "webp", "Output format: webp or tga")
	size := flag.Int("size", 900, "Image size in pixels")
	holeHeight := flag.Float64("hole-height", 55, "Hole center height above the surface in mm")

	flag.Parse()

	if *format != "webp" && *format != "tga" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want webp or tga)\n", *format)
		os.Exit(1)
	}

	dayParams := dial.DefaultDayDialParams()
	dayParams.Size = *size
	dayParams.HoleHeightMM = *holeHeight

	images := map[string]*image.NRGBA{
		"roman_day_dial":   dial.DayDial(dayParams),
		"roman_night_dial": dial.NightDial(dial.NightDialParams{Size: *size}),
	}

	for name, img := range images {
		path := filepath.Join(*outDir, name+"."+*format)
		if err := save(path, *format, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

func save(path, format string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "tga":
		err = tga.Encode(f, img)
	default:
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
