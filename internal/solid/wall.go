package solid

import (
	"fmt"

	"roman-dodecahedron/internal/mathutil"
	"roman-dodecahedron/internal/mesh"
)

// BoreWall connects the outer hole rim to the inner rim index-for-index,
// two triangles per segment, wound so the wall normals point into the
// bore. The rims must have identical sample counts and matching angular
// order; mismatched rims would twist the wall.
func BoreWall(m *mesh.Mesh, outer, inner []mathutil.Vec3) error {
	if len(outer) != len(inner) {
		return fmt.Errorf("solid: rim sample counts differ (%d outer, %d inner)", len(outer), len(inner))
	}
	n := len(outer)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Add(outer[i], outer[j], inner[i])
		m.Add(inner[i], outer[j], inner[j])
	}
	return nil
}

// OffsetRim returns the rim translated by -dir*depth, preserving sample
// order, for a bore drilled depth deep along the face normal dir.
func OffsetRim(rim []mathutil.Vec3, dir mathutil.Vec3, depth float64) []mathutil.Vec3 {
	offset := dir.Scale(depth)
	inner := make([]mathutil.Vec3, len(rim))
	for i, p := range rim {
		inner[i] = p.Sub(offset)
	}
	return inner
}

// BoreFloor caps the bottom of a blind bore with a fan around its center.
// The floor faces along +normal, out of the material toward the opening.
func BoreFloor(m *mesh.Mesh, center mathutil.Vec3, rim []mathutil.Vec3) {
	n := len(rim)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Add(center, rim[i], rim[j])
	}
}
