// Package solid turns the dodecahedron geometry and the hole table into
// the final triangle soup: pierced faces, bore walls, vertex knobs, and
// the hollow-shell edge walls.
package solid

import (
	"math"

	"roman-dodecahedron/internal/geometry"
	"roman-dodecahedron/internal/mathutil"
	"roman-dodecahedron/internal/mesh"
)

// fallbackInradiusRatio is the hole-to-inradius ratio beyond which a face
// is deemed fully consumed by its hole and falls back to plain pentagon
// triangulation.
const fallbackInradiusRatio = 0.95

// faceFrame is the in-plane orthonormal basis of one face, anchored at the
// face center with basisX pointing toward vertex 0.
type faceFrame struct {
	verts  [5]mathutil.Vec3
	center mathutil.Vec3
	normal mathutil.Vec3
	basisX mathutil.Vec3
	basisY mathutil.Vec3
}

func newFaceFrame(d *geometry.Dodecahedron, face int) faceFrame {
	f := faceFrame{
		verts:  d.FaceVertices(face),
		center: d.Centers[face],
		normal: d.Normals[face],
	}
	v0 := f.verts[0].Sub(f.center)
	inPlane := v0.Sub(f.normal.Scale(v0.Dot(f.normal)))
	f.basisX = inPlane.Normalize()
	f.basisY = f.normal.Cross(f.basisX)
	return f
}

// angleOf returns p's angle around the face center in [0, 2π).
func (f faceFrame) angleOf(p mathutil.Vec3) float64 {
	local := p.Sub(f.center)
	return mathutil.NormalizeAngle(math.Atan2(local.Dot(f.basisY), local.Dot(f.basisX)))
}

// rimPoints samples the hole boundary at the given angular resolution,
// ordered by increasing angle. Sample k sits at angle 2πk/segments.
func (f faceFrame) rimPoints(radius float64, segments int) []mathutil.Vec3 {
	rim := make([]mathutil.Vec3, segments)
	for k := 0; k < segments; k++ {
		a := 2 * math.Pi * float64(k) / float64(segments)
		offset := f.basisX.Scale(radius * math.Cos(a)).Add(f.basisY.Scale(radius * math.Sin(a)))
		rim[k] = f.center.Add(offset)
	}
	return rim
}

// TriangulateFace covers face's outer surface with triangles around a hole
// of radius holeRadius, appending them to m. It returns the ordered rim
// samples for the bore builders, or nil when the hole consumes the whole
// face: then the pentagon is fan-triangulated on both the outer surface
// and a copy offset inward by wallThickness, and no bore exists.
func TriangulateFace(m *mesh.Mesh, d *geometry.Dodecahedron, face int, holeRadius float64, segments int, wallThickness float64) []mathutil.Vec3 {
	f := newFaceFrame(d, face)

	if holeRadius >= fallbackInradiusRatio*d.Inradius(face) {
		fanPentagon(m, f, wallThickness)
		return nil
	}

	rim := f.rimPoints(holeRadius, segments)
	triangulateAnnulus(m, f, rim, segments)
	return rim
}

// triangulateAnnulus fills the region between the pentagon boundary and
// the rim. Each pentagon edge owns the rim samples inside its angular
// span; a fan from the edge's first endpoint covers them, an opening
// triangle joins the previous span's last sample so adjacent fans share
// edges, and a closing triangle returns to the edge's second endpoint.
func triangulateAnnulus(m *mesh.Mesh, f faceFrame, rim []mathutil.Vec3, segments int) {
	for e := 0; e < 5; e++ {
		pv0 := f.verts[e]
		pv1 := f.verts[(e+1)%5]
		a0 := f.angleOf(pv0)
		a1 := f.angleOf(pv1)

		var span []int
		for k := 0; k < segments; k++ {
			ka := 2 * math.Pi * float64(k) / float64(segments)
			if mathutil.AngleInSpan(ka, a0, a1) {
				span = append(span, k)
			}
		}
		sortByAngleFrom(span, a0, segments)

		if len(span) == 0 {
			// Hole far smaller than the sampling can resolve against this
			// edge: degrade to a single triangle toward the nearest sample.
			m.Add(pv0, pv1, rim[nearestSample(a0, a1, segments)])
			continue
		}

		prev := (span[0] - 1 + segments) % segments
		m.Add(pv0, rim[span[0]], rim[prev])
		for j := 0; j+1 < len(span); j++ {
			m.Add(pv0, rim[span[j+1]], rim[span[j]])
		}
		m.Add(pv0, pv1, rim[span[len(span)-1]])
	}
}

// sortByAngleFrom orders rim sample indices by counter-clockwise distance
// from the span start, so wrapped spans stay in walk order.
func sortByAngleFrom(span []int, a0 float64, segments int) {
	dist := func(k int) float64 {
		return mathutil.AngleDistFrom(2*math.Pi*float64(k)/float64(segments), a0)
	}
	// Insertion sort: spans hold a handful of samples.
	for i := 1; i < len(span); i++ {
		for j := i; j > 0 && dist(span[j]) < dist(span[j-1]); j-- {
			span[j], span[j-1] = span[j-1], span[j]
		}
	}
}

// nearestSample returns the rim sample index closest to the middle of the
// span [a0, a1].
func nearestSample(a0, a1 float64, segments int) int {
	mid := mathutil.NormalizeAngle(a0 + mathutil.AngleDistFrom(a1, a0)/2)
	best, bestDist := 0, math.Inf(1)
	for k := 0; k < segments; k++ {
		ka := 2 * math.Pi * float64(k) / float64(segments)
		d := mathutil.AngleDistFrom(ka, mid)
		if d > math.Pi {
			d = 2*math.Pi - d
		}
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// fanPentagon triangulates the whole pentagon from vertex 0 on the outer
// surface and, winding reversed, on a copy offset inward by wallThickness.
func fanPentagon(m *mesh.Mesh, f faceFrame, wallThickness float64) {
	offset := f.normal.Scale(wallThickness)
	for i := 1; i < 4; i++ {
		m.Add(f.verts[0], f.verts[i], f.verts[i+1])
		m.Add(f.verts[0].Sub(offset), f.verts[i+1].Sub(offset), f.verts[i].Sub(offset))
	}
}
