package stl

import (
	"fmt"
	"os"
	"strings"

	"roman-dodecahedron/internal/mathutil"
	"roman-dodecahedron/internal/mesh"
)

// Read parses a binary STL file, returning its header comment and the
// triangle soup. Facet normals are not kept; they are derived data.
func Read(path string) (string, *mesh.Mesh, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("stl: read %s: %w", path, err)
	}

	if len(raw) < headerSize+4 {
		return "", nil, fmt.Errorf("stl: %s too short (%d bytes)", path, len(raw))
	}

	r := &reader{data: raw}
	comment := strings.TrimRight(string(r.bytes(headerSize)), "\x00 ")
	count := int(r.u32())

	if want := FileSize(count); int64(len(raw)) != want {
		return "", nil, fmt.Errorf("stl: %s is %d bytes, want %d for %d triangles", path, len(raw), want, count)
	}

	m := &mesh.Mesh{Tris: make([]mesh.Triangle, 0, count)}
	for i := 0; i < count; i++ {
		r.skip(12) // stored facet normal
		var t mesh.Triangle
		for v := 0; v < 3; v++ {
			t[v] = mathutil.Vec3{
				float64(r.f32()),
				float64(r.f32()),
				float64(r.f32()),
			}
		}
		r.skip(2) // attribute byte count
		m.Tris = append(m.Tris, t)
	}
	return comment, m, nil
}
