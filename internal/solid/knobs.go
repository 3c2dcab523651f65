package solid

import (
	"roman-dodecahedron/internal/geometry"
	"roman-dodecahedron/internal/mesh"
)

// PlaceKnobs appends a spherical standoff knob at every vertex, its center
// pushed outward along the vertex's radial direction by
// radius*offsetFraction. No overlap check is made between neighboring
// knobs; the parameters decide that.
func PlaceKnobs(m *mesh.Mesh, d *geometry.Dodecahedron, radius, offsetFraction float64, segments int) {
	if radius <= 0 {
		return
	}
	for _, v := range d.Vertices {
		dir := v.Normalize()
		center := v.Add(dir.Scale(radius * offsetFraction))
		m.AddSphere(center, radius, segments)
	}
}
