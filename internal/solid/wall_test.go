package solid

import (
	"math"
	"testing"

	"roman-dodecahedron/internal/mathutil"
	"roman-dodecahedron/internal/mesh"
)

// testRim is a unit circle in the xy-plane, counter-clockwise from +z.
func testRim(n int) []mathutil.Vec3 {
	rim := make([]mathutil.Vec3, n)
	for i := range rim {
		a := 2 * math.Pi * float64(i) / float64(n)
		rim[i] = mathutil.Vec3{math.Cos(a), math.Sin(a), 0}
	}
	return rim
}

func TestBoreWallRejectsMismatchedRims(t *testing.T) {
	var m mesh.Mesh
	if err := BoreWall(&m, testRim(8), testRim(7)); err == nil {
		t.Error("mismatched rims: want error")
	}
	if m.Len() != 0 {
		t.Errorf("mismatched rims appended %d triangles", m.Len())
	}
}

func TestBoreWallNormalsPointIntoBore(t *testing.T) {
	const n = 16
	outer := testRim(n)
	inner := OffsetRim(outer, mathutil.Vec3{0, 0, 1}, 1)

	var m mesh.Mesh
	if err := BoreWall(&m, outer, inner); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 2*n {
		t.Fatalf("%d triangles, want %d", m.Len(), 2*n)
	}

	axisCenter := mathutil.Vec3{0, 0, -0.5}
	for i, tri := range m.Tris {
		radial := tri.Centroid().Sub(axisCenter)
		if tri.Normal().Dot(radial) >= 0 {
			t.Fatalf("triangle %d: wall normal points out of the bore", i)
		}
	}
}

func TestOffsetRim(t *testing.T) {
	rim := testRim(4)
	inner := OffsetRim(rim, mathutil.Vec3{0, 0, 1}, 2.5)
	for i := range rim {
		want := rim[i].Sub(mathutil.Vec3{0, 0, 2.5})
		if inner[i] != want {
			t.Errorf("sample %d: %v, want %v", i, inner[i], want)
		}
	}
}

func TestBoreFloorFacesOpening(t *testing.T) {
	const n = 12
	rim := testRim(n)
	var m mesh.Mesh
	BoreFloor(&m, mathutil.Vec3{}, rim)

	if m.Len() != n {
		t.Fatalf("%d triangles, want %d", m.Len(), n)
	}
	for i, tri := range m.Tris {
		if tri.Normal().Dot(mathutil.Vec3{0, 0, 1}) <= 0 {
			t.Fatalf("triangle %d: floor faces away from the opening", i)
		}
	}
}
