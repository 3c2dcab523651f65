package mesh

import (
	"math"

	"roman-dodecahedron/internal/mathutil"
)

// AddCylinder appends a capped cylinder centered at center, extending
// height/2 along ±axis. axis need not be unit length. Both caps and the
// side wall wind outward.
func (m *Mesh) AddCylinder(center, axis mathutil.Vec3, radius, height float64, segments int) {
	dir := axis.Normalize()

	// Reference vector for the perpendicular basis; swap when the axis is
	// near ±Z to keep the cross product well conditioned.
	ref := mathutil.Vec3{0, 0, 1}
	if math.Abs(dir[2]) >= 0.9 {
		ref = mathutil.Vec3{1, 0, 0}
	}
	u := ref.Cross(dir).Normalize()
	v := dir.Cross(u) // u × v = dir, so increasing angle is CCW seen from +dir

	botCenter := center.Sub(dir.Scale(height / 2))
	topCenter := center.Add(dir.Scale(height / 2))

	bot := make([]mathutil.Vec3, segments)
	top := make([]mathutil.Vec3, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		offset := u.Scale(radius * math.Cos(a)).Add(v.Scale(radius * math.Sin(a)))
		bot[i] = botCenter.Add(offset)
		top[i] = topCenter.Add(offset)
	}

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments

		// Caps: top faces +dir, bottom faces -dir.
		m.Add(topCenter, top[i], top[j])
		m.Add(botCenter, bot[j], bot[i])

		// Side wall, outward.
		m.Add(bot[i], bot[j], top[i])
		m.Add(bot[j], top[j], top[i])
	}
}
