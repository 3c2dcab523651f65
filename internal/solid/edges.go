package solid

import (
	"fmt"

	"roman-dodecahedron/internal/geometry"
	"roman-dodecahedron/internal/mesh"
)

// BuildEdgeWalls joins the outer shell to an origin-scaled inner shell
// along all 30 edges, two triangles per edge. This is the side wall of the
// hollow-shell variant; the single-shell generator does not call it, but
// it stands on its own for shell-style prints. Fails if the face table's
// edges are not each shared by exactly two faces, since any wall built
// from such a table is non-manifold.
func BuildEdgeWalls(m *mesh.Mesh, d *geometry.Dodecahedron, innerScale float64) error {
	if innerScale <= 0 || innerScale >= 1 {
		return fmt.Errorf("solid: inner shell scale must be in (0,1), got %g", innerScale)
	}
	edges, err := d.Edges()
	if err != nil {
		return err
	}
	for _, e := range edges {
		aOut := d.Vertices[e.A]
		bOut := d.Vertices[e.B]
		aIn := aOut.Scale(innerScale)
		bIn := bOut.Scale(innerScale)
		m.Add(aOut, bIn, aIn)
		m.Add(aOut, bOut, bIn)
	}
	return nil
}
