package main

import (
	"fmt"
	"math"
	"os"

	"roman-dodecahedron/internal/stl"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspectstl file.stl [file.stl ...]")
		os.Exit(1)
	}

	for _, arg := range os.Args[1:] {
		comment, m, err := stl.Read(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Read error %s: %v\n", arg, err)
			continue
		}

		fmt.Printf("\n=== %s ===\n", arg)
		fmt.Printf("Header: %q\n", comment)
		fmt.Printf("Triangles: %d (%d bytes)\n", m.Len(), stl.FileSize(m.Len()))

		var bbMin, bbMax [3]float64
		bbMin = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
		bbMax = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
		outward := 0
		degenerate := 0

		for _, t := range m.Tris {
			for _, p := range t {
				for k := 0; k < 3; k++ {
					if p[k] < bbMin[k] {
						bbMin[k] = p[k]
					}
					if p[k] > bbMax[k] {
						bbMax[k] = p[k]
					}
				}
			}
			n := t.Normal()
			if n.Len() < 0.5 {
				degenerate++
				continue
			}
			if n.Dot(t.Centroid()) > 0 {
				outward++
			}
		}

		fmt.Printf("Bounds: x=[%.2f..%.2f] y=[%.2f..%.2f] z=[%.2f..%.2f]\n",
			bbMin[0], bbMax[0], bbMin[1], bbMax[1], bbMin[2], bbMax[2])
		fmt.Printf("Surface area: %.1f mm²\n", m.SurfaceArea())
		if m.Len() > 0 {
			fmt.Printf("Origin-outward facets: %d/%d (%.1f%%), degenerate: %d\n",
				outward, m.Len(), 100*float64(outward)/float64(m.Len()), degenerate)
		}
	}
}
