package solid

import (
	"testing"

	"roman-dodecahedron/internal/geometry"
	"roman-dodecahedron/internal/mesh"
)

func TestBuildEdgeWalls(t *testing.T) {
	d, err := geometry.NewDodecahedron(40)
	if err != nil {
		t.Fatal(err)
	}
	var m mesh.Mesh
	if err := BuildEdgeWalls(&m, d, (40.0-3)/40); err != nil {
		t.Fatal(err)
	}
	if want := 2 * geometry.NumEdges; m.Len() != want {
		t.Errorf("%d triangles, want %d", m.Len(), want)
	}
}

func TestBuildEdgeWallsRejectsBadScale(t *testing.T) {
	d, err := geometry.NewDodecahedron(40)
	if err != nil {
		t.Fatal(err)
	}
	var m mesh.Mesh
	for _, scale := range []float64{0, 1, 1.2, -0.5} {
		if err := BuildEdgeWalls(&m, d, scale); err == nil {
			t.Errorf("scale %g: want error", scale)
		}
	}
}

func TestBuildEdgeWallsRejectsBrokenTopology(t *testing.T) {
	d, err := geometry.NewDodecahedron(40)
	if err != nil {
		t.Fatal(err)
	}
	d.Faces[3][2] = d.Faces[3][1]
	var m mesh.Mesh
	if err := BuildEdgeWalls(&m, d, 0.9); err == nil {
		t.Error("broken topology: want error, not a non-manifold wall")
	}
}
