// Package mesh holds the triangle-soup accumulator and the parametric
// surface primitives. Triangles are value types: each one owns its three
// corner points, there is no shared vertex buffer.
package mesh

import "roman-dodecahedron/internal/mathutil"

// Triangle is three corner points in winding order. The winding determines
// the outward normal via the right-hand rule.
type Triangle [3]mathutil.Vec3

// Normal returns the unit facet normal, or the zero vector for a
// degenerate triangle.
func (t Triangle) Normal() mathutil.Vec3 {
	e1 := t[1].Sub(t[0])
	e2 := t[2].Sub(t[0])
	return e1.Cross(e2).Normalize()
}

// Area returns the triangle area.
func (t Triangle) Area() float64 {
	e1 := t[1].Sub(t[0])
	e2 := t[2].Sub(t[0])
	return e1.Cross(e2).Len() / 2
}

// Centroid returns the arithmetic mean of the three corners.
func (t Triangle) Centroid() mathutil.Vec3 {
	return t[0].Add(t[1]).Add(t[2]).Scale(1.0 / 3.0)
}

// Mesh is an append-only triangle accumulator.
type Mesh struct {
	Tris []Triangle
}

// Add appends one triangle given its corners in winding order.
func (m *Mesh) Add(a, b, c mathutil.Vec3) {
	m.Tris = append(m.Tris, Triangle{a, b, c})
}

// Append concatenates another mesh's triangles, preserving order.
func (m *Mesh) Append(other *Mesh) {
	m.Tris = append(m.Tris, other.Tris...)
}

// Len returns the triangle count.
func (m *Mesh) Len() int {
	return len(m.Tris)
}

// SurfaceArea returns the summed area of all triangles.
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Tris {
		total += t.Area()
	}
	return total
}
