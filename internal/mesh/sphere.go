package mesh

import (
	"math"

	"roman-dodecahedron/internal/mathutil"
)

// AddSphere appends a UV-triangulated sphere with the given center and
// radius. segments is used for both latitude and longitude. The pole rows
// emit single triangles instead of quad halves, so the caps close without
// degenerate slivers.
func (m *Mesh) AddSphere(center mathutil.Vec3, radius float64, segments int) {
	rows := segments + 1
	pts := make([]mathutil.Vec3, rows*segments)
	for i := 0; i < rows; i++ {
		lat := math.Pi * (float64(i)/float64(segments) - 0.5)
		for j := 0; j < segments; j++ {
			lon := 2 * math.Pi * float64(j) / float64(segments)
			pts[i*segments+j] = mathutil.Vec3{
				center[0] + radius*math.Cos(lat)*math.Cos(lon),
				center[1] + radius*math.Cos(lat)*math.Sin(lon),
				center[2] + radius*math.Sin(lat),
			}
		}
	}

	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			jn := (j + 1) % segments
			v0 := pts[i*segments+j]
			v1 := pts[i*segments+jn]
			v2 := pts[(i+1)*segments+j]
			v3 := pts[(i+1)*segments+jn]

			// Row 0 collapses at the south pole, the last row at the north.
			if i > 0 {
				m.Add(v0, v1, v2)
			}
			if i < segments-1 {
				m.Add(v1, v3, v2)
			}
		}
	}
}
