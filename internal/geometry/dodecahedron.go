// Package geometry provides the regular dodecahedron: vertex positions,
// pentagonal face topology, and the derived per-face frame used by the
// mesh builders.
package geometry

import (
	"fmt"
	"math"

	"roman-dodecahedron/internal/mathutil"
)

const (
	NumVertices = 20
	NumFaces    = 12
	NumEdges    = 30
)

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

// Face is the ordered vertex indices of one pentagon, counter-clockwise
// viewed from outside the solid.
type Face [5]int

// Edge is an undirected vertex index pair, canonicalized so A < B.
type Edge struct {
	A, B int
}

// faceTable lists the 12 pentagons of the vertex layout produced by
// buildVertices. Each of the 30 edges appears in exactly two faces and
// each vertex in exactly three; NewDodecahedron verifies this.
var faceTable = [NumFaces]Face{
	{0, 8, 4, 14, 12},
	{0, 16, 2, 10, 8},
	{0, 12, 1, 17, 16},
	{1, 12, 14, 5, 9},
	{1, 9, 11, 3, 17},
	{2, 16, 17, 3, 13},
	{2, 13, 15, 6, 10},
	{4, 8, 10, 6, 18},
	{4, 18, 19, 5, 14},
	{3, 11, 7, 15, 13},
	{5, 19, 7, 11, 9},
	{6, 15, 7, 19, 18},
}

// Dodecahedron is the immutable solid geometry for one circumradius.
type Dodecahedron struct {
	Circumradius float64
	Vertices     [NumVertices]mathutil.Vec3
	Faces        [NumFaces]Face
	Centers      [NumFaces]mathutil.Vec3 // mean of each face's vertices
	Normals      [NumFaces]mathutil.Vec3 // unit, outward (solid is origin-centered)
}

// NewDodecahedron builds the solid for the given circumradius (the maximum
// vertex distance from the origin, i.e. half the vertex-to-vertex
// diameter). The face table's edge topology is verified before returning.
func NewDodecahedron(circumradius float64) (*Dodecahedron, error) {
	if circumradius <= 0 {
		return nil, fmt.Errorf("geometry: circumradius must be positive, got %g", circumradius)
	}

	d := &Dodecahedron{
		Circumradius: circumradius,
		Vertices:     buildVertices(circumradius),
		Faces:        faceTable,
	}

	for i, f := range d.Faces {
		var sum mathutil.Vec3
		for _, vi := range f {
			sum = sum.Add(d.Vertices[vi])
		}
		d.Centers[i] = sum.Scale(1.0 / 5.0)
		d.Normals[i] = d.Centers[i].Normalize()
	}

	if _, err := d.Edges(); err != nil {
		return nil, err
	}
	return d, nil
}

// buildVertices returns the three golden-ratio point families scaled so
// the cube-corner family sits at distance circumradius from the origin.
func buildVertices(circumradius float64) [NumVertices]mathutil.Vec3 {
	s := circumradius / math.Sqrt(3)
	var v [NumVertices]mathutil.Vec3
	n := 0

	// (±s, ±s, ±s)
	for _, i := range [2]float64{-1, 1} {
		for _, j := range [2]float64{-1, 1} {
			for _, k := range [2]float64{-1, 1} {
				v[n] = mathutil.Vec3{i * s, j * s, k * s}
				n++
			}
		}
	}

	// (0, ±s/φ, ±sφ)
	for _, j := range [2]float64{-1, 1} {
		for _, k := range [2]float64{-1, 1} {
			v[n] = mathutil.Vec3{0, j * s / Phi, k * s * Phi}
			n++
		}
	}

	// (±s/φ, ±sφ, 0)
	for _, i := range [2]float64{-1, 1} {
		for _, j := range [2]float64{-1, 1} {
			v[n] = mathutil.Vec3{i * s / Phi, j * s * Phi, 0}
			n++
		}
	}

	// (±sφ, 0, ±s/φ)
	for _, i := range [2]float64{-1, 1} {
		for _, k := range [2]float64{-1, 1} {
			v[n] = mathutil.Vec3{i * s * Phi, 0, k * s / Phi}
			n++
		}
	}

	return v
}

// Edges derives the 30 undirected edges from the face table. Every edge
// must be shared by exactly two faces; a table violating that would build
// a non-manifold side wall, so it is reported as an error instead.
func (d *Dodecahedron) Edges() ([]Edge, error) {
	seen := make(map[Edge]int, NumEdges)
	edges := make([]Edge, 0, NumEdges)

	for _, f := range d.Faces {
		for i := 0; i < len(f); i++ {
			a, b := f[i], f[(i+1)%len(f)]
			if a > b {
				a, b = b, a
			}
			e := Edge{a, b}
			if seen[e] == 0 {
				edges = append(edges, e)
			}
			seen[e]++
		}
	}

	if len(edges) != NumEdges {
		return nil, fmt.Errorf("geometry: derived %d edges, want %d", len(edges), NumEdges)
	}
	for e, count := range seen {
		if count != 2 {
			return nil, fmt.Errorf("geometry: edge %d-%d shared by %d faces, want 2", e.A, e.B, count)
		}
	}
	return edges, nil
}

// FaceVertices returns the world-space corner points of face i.
func (d *Dodecahedron) FaceVertices(i int) [5]mathutil.Vec3 {
	var out [5]mathutil.Vec3
	for j, vi := range d.Faces[i] {
		out[j] = d.Vertices[vi]
	}
	return out
}

// Inradius returns the distance from face i's center to the midpoint of
// its first edge, projected into the face plane. The largest hole that
// still leaves an annulus must stay below this.
func (d *Dodecahedron) Inradius(i int) float64 {
	f := d.Faces[i]
	mid := d.Vertices[f[0]].Add(d.Vertices[f[1]]).Scale(0.5)
	local := mid.Sub(d.Centers[i])
	n := d.Normals[i]
	inPlane := local.Sub(n.Scale(local.Dot(n)))
	return inPlane.Len()
}
